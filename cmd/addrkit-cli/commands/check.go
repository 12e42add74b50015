package commands

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/addrkit/addrkit/cmd/addrkit-cli/iterator"
	"github.com/addrkit/addrkit/cmd/addrkit-cli/workpool"
	"github.com/addrkit/addrkit/disposable"
	"github.com/addrkit/addrkit/validator"
)

var checkSettings = &CheckSettings{}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate e-mail addresses",
	Long: `Validate e-mail addresses, either a single one passed as argument or a
stream read from stdin. Results are written as JSON lines.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.New("too many arguments, expected 0 or 1")
		}

		if len(args) > 0 && isStdinPiped() {
			return errors.New("can't read both from stdin and argument")
		}

		if len(args) == 0 && !isStdinPiped() {
			return errors.New("missing argument")
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildValidator()
		if err != nil {
			return err
		}

		var it *iterator.Source
		if len(args) > 0 {
			it = createTextIterator(strings.NewReader(args[0]))
		} else {
			switch checkSettings.Format {
			case "":
				fallthrough
			case "text":
				it = createTextIterator(os.Stdin)
			case "csv":
				it = createCSVIterator(os.Stdin)
			default:
				return errors.New("bad format " + checkSettings.Format)
			}
		}

		workers := int(checkSettings.Workers)
		if workers < 1 {
			workers = 1
		}

		jsonEncoder := json.NewEncoder(cmd.OutOrStdout())
		if !isStdoutPiped() {
			jsonEncoder.SetIndent("", "  ")
		}

		var encoderLock sync.Mutex

		pool := &workpool.Pool{}
		pool.Start(workers, func(tasks <-chan workpool.Task) {
			for task := range tasks {
				result, err := v.Check(task.Ctx, task.Email)
				if err != nil {
					cmd.PrintErrln(err)
					continue
				}

				record := CheckResult{
					Email:   task.Email,
					Valid:   result.Valid,
					Code:    string(result.Code),
					Version: 1,
				}

				if result.MX != nil {
					record.Cached = result.MX.Cached
				}

				if result.Disposable != nil {
					record.Disposable = result.Disposable.Disposable
				}

				encoderLock.Lock()
				err = jsonEncoder.Encode(record)
				encoderLock.Unlock()

				if err != nil {
					cmd.PrintErrln(err)
				}
			}
		})

		for it.Next() {
			email, err := it.Value()
			if err != nil {
				cmd.PrintErrln(err)
				continue
			}

			if email == "" {
				continue
			}

			pool.Submit(workpool.Task{
				Ctx:   cmd.Context(),
				Email: email,
			})
		}

		pool.Wait()

		return it.Close()
	},
}

func buildValidator() (*validator.EmailValidator, error) {
	options := make([]validator.Option, 0, 4)

	if checkSettings.Check.Resolver != nil {
		options = append(options, validator.WithResolver(
			validator.NewCustomNetResolver(checkSettings.Check.Resolver),
		))
	}

	if checkSettings.Check.Timeout != "" {
		options = append(options, validator.WithTimeoutString(checkSettings.Check.Timeout))
	}

	if checkSettings.Check.SkipMX {
		options = append(options, validator.WithoutMXCheck())
	}

	if checkSettings.Check.WithDisposable {
		options = append(options, validator.WithDisposableSet(
			disposable.New(checkSettings.Check.ExtraDisposable...),
		))
	}

	return validator.New(options...)
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkSettings.Format, "format", "text", "text or csv. Text means a single email address per line '\\n'")
	checkCmd.Flags().Uint64Var(&checkSettings.CSV.skipRows, "csv-skip-rows", 0, "Rows to skip, useful when wanting to skip the header in CSV files")
	checkCmd.Flags().Uint64Var(&checkSettings.CSV.column, "csv-column", 0, "The column to read email addresses from, 0-indexed")
	checkCmd.Flags().UintVar(&checkSettings.Workers, "workers", 1, "Amount of concurrent checks")
	checkCmd.Flags().IPVar(&checkSettings.Check.Resolver, "resolver", nil, "Custom resolver to use, otherwise system default is used")
	checkCmd.Flags().StringVar(&checkSettings.Check.Timeout, "timeout", "", "Per-address lookup timeout, a duration like 2s or plain milliseconds")
	checkCmd.Flags().BoolVar(&checkSettings.Check.SkipMX, "skip-mx", false, "Only check the address structure, no DNS traffic")
	checkCmd.Flags().BoolVar(&checkSettings.Check.WithDisposable, "with-disposable", false, "Reject addresses from known disposable providers")
	checkCmd.Flags().StringSliceVar(&checkSettings.Check.ExtraDisposable, "extra-disposable", nil, "Additional domains to treat as disposable")
}
