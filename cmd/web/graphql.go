package main

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/addrkit/addrkit/cmd/web/akhttp"
	"github.com/addrkit/addrkit/cmd/web/services"
	"github.com/addrkit/addrkit/mxcache"
	"github.com/addrkit/addrkit/validator"
)

func NewGraphQLSchema(checkSvc *services.CheckSvc, cacheSvc *services.CacheSvc) (graphql.Schema, error) {

	recordType := graphql.NewObject(graphql.ObjectConfig{
		Name: "record",
		Fields: graphql.Fields{
			"exchange": &graphql.Field{
				Description: "The mail exchanger host name.",
				Type:        graphql.NewNonNull(graphql.String),
			},
			"priority": &graphql.Field{
				Description: "The exchanger preference, lower is preferred.",
				Type:        graphql.NewNonNull(graphql.Int),
			},
		},
	})

	checkType := graphql.NewObject(graphql.ObjectConfig{
		Name: "check",
		Fields: graphql.Fields{
			"valid": &graphql.Field{
				Description: "Whether the address passed every enabled phase.",
				Type:        graphql.NewNonNull(graphql.Boolean),
			},
			"code": &graphql.Field{
				Description: "The first failure encountered, empty when valid.",
				Type:        graphql.String,
			},
			"records": &graphql.Field{
				Description: "The MX records found for the domain. 0 or more.",
				Type:        graphql.NewList(graphql.NewNonNull(recordType)),
			},
			"cached": &graphql.Field{
				Description: "True when the MX answer came from the cache.",
				Type:        graphql.NewNonNull(graphql.Boolean),
			},
			"disposable": &graphql.Field{
				Description: "True when the domain is a known disposable provider.",
				Type:        graphql.NewNonNull(graphql.Boolean),
			},
		},
	})

	cacheStatsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "cacheStats",
		Fields: graphql.Fields{
			"hits":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"misses":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"evictions": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"size":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"hitRate": &graphql.Field{
				Description: "Percentage of reads answered from the cache.",
				Type:        graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					stats, ok := p.Source.(mxcache.Stats)
					if !ok {
						return 0.0, errors.New("unexpected source type")
					}

					return stats.HitRate, nil
				},
			},
		},
	})

	fields := graphql.Fields{
		"check": &graphql.Field{
			Type: checkType,
			Args: graphql.FieldConfigArgument{
				"email": &graphql.ArgumentConfig{
					Type:        graphql.NewNonNull(graphql.String),
					Description: "The e-mail address to validate",
				},
			},
			Resolve: func(p graphql.ResolveParams) (i interface{}, err error) {
				i = akhttp.CheckResponse{}

				value, ok := p.Args["email"]
				if !ok {
					return i, errors.New("missing required parameters")
				}

				email := value.(string)
				result, err := checkSvc.HandleCheckRequest(p.Context, email)
				if err != nil && !errors.Is(err, validator.ErrDNSLookupTimeout) {
					return i, err
				}

				response := akhttp.CheckResponse{
					Valid: result.Valid,
					Code:  result.Code,
				}

				if result.MX != nil {
					response.Records = result.MX.Records
					response.Cached = result.MX.Cached
				}

				if result.Disposable != nil {
					response.Disposable = result.Disposable.Disposable
				}

				response.PrepareResponse()
				return response, err
			},
			Description: "Validate an e-mail address",
		},
		"cacheStats": &graphql.Field{
			Type: cacheStatsType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return cacheSvc.Stats(), nil
			},
			Description: "Usage counters of the MX cache",
		},
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "RootQuery",
			Fields: fields,
		}),
	})
}
