package main

import (
	"encoding/hex"
	"fmt"
	"os"

	api "github.com/MixinNetwork/threshold-check"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func main() {
	app := &cli.App{
		Name:  "thcheck",
		Usage: "two-party threshold attestation checks",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Value:   1,
				Usage:   "per-index parallelism",
				EnvVars: []string{"THCHECK_WORKERS"},
			},
			&cli.BoolFlag{
				Name:    "constant-time",
				Usage:   "decide without revealing the failing index",
				EnvVars: []string{"THCHECK_CONSTANT_TIME"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{"THCHECK_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "keygen",
				Usage:  "generate a key share",
				Action: keygenCmd,
			},
			{
				Name:  "combine",
				Usage: "combine two public keys into the threshold key",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "pk", Required: true},
				},
				Action: combineCmd,
			},
			{
				Name:  "simulate",
				Usage: "run a full client/server exchange from a scenario file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "scenario", Aliases: []string{"s"}, Required: true},
				},
				Action: simulateCmd,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger(), nil
}

func keygenCmd(c *cli.Context) error {
	private, public := api.GenerateKeys()
	defer api.Zeroize(private)
	fmt.Printf("secret: %s\n", hex.EncodeToString(private.Bytes()))
	fmt.Printf("public: %s\n", hex.EncodeToString(public.Bytes()))
	return nil
}

func combineCmd(c *cli.Context) error {
	keys := c.StringSlice("pk")
	if len(keys) != 2 {
		return xerrors.Errorf("combine needs exactly 2 public keys, got %d", len(keys))
	}
	pk1, err := api.HexToPoint(keys[0])
	if err != nil {
		return err
	}
	pk2, err := api.HexToPoint(keys[1])
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(api.CombinePublicKeys(pk1, pk2).Bytes()))
	return nil
}

func simulateCmd(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	scenario, err := loadScenario(c.String("scenario"))
	if err != nil {
		return err
	}
	protocol := api.NewProtocol(&api.Config{
		Workers:              c.Int("workers"),
		ConstantTimeDecision: c.Bool("constant-time"),
		Logger:               &logger,
	})
	report, err := simulate(protocol, scenario, logger)
	if err != nil {
		return err
	}
	fmt.Printf("session: %s\n", report.Session)
	fmt.Printf("checks: %d\n", report.Size)
	fmt.Printf("passed: %t\n", report.Passed)
	return nil
}
