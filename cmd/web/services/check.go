package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/addrkit/addrkit/validator"
)

func NewCheckService(v *validator.EmailValidator, logger *logrus.Logger) CheckSvc {
	return CheckSvc{
		validator: v,
		logger:    logger.WithField("svc", "check"),
	}
}

type CheckSvc struct {
	validator *validator.EmailValidator
	logger    *logrus.Entry
}

// HandleCheckRequest runs the full validation pipeline. The only error it
// returns is a lookup timeout, everything else folds into the result code.
func (c *CheckSvc) HandleCheckRequest(ctx context.Context, email string) (validator.Result, error) {
	start := time.Now()

	result, err := c.validator.Check(ctx, email)

	c.logger.WithContext(ctx).WithFields(logrus.Fields{
		"valid":    result.Valid,
		"code":     result.Code,
		"duration": time.Since(start).String(),
	}).Debug("Check performed")

	return result, err
}
