package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// descriptionPart is the multipart name of an experiment description.
const descriptionPart = "new_exp.json"

// ExperimentCommand returns the experiment subcommand group.
func ExperimentCommand() *cli.Command {
	idFlag := &cli.IntFlag{Name: "id", Aliases: []string{"i"}, Usage: "experiment id", Required: true}

	return &cli.Command{
		Name:    "experiment",
		Aliases: []string{"exp"},
		Usage:   "Submit, inspect and stop experiments",
		Subcommands: []*cli.Command{
			{
				Name:  "submit",
				Usage: "Submit an experiment description",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "experiment description JSON `FILE`", Required: true},
					&cli.StringSliceFlag{Name: "firmware", Aliases: []string{"f"}, Usage: "firmware `FILE` referenced by the description, repeatable"},
				},
				Action: experimentSubmit,
			},
			{
				Name:  "list",
				Usage: "List your experiments",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "state", Value: domain.DefaultExperimentState, Usage: "comma separated experiment states"},
					&cli.IntFlag{Name: "limit", Usage: "maximum number of experiments (0 is no limit)"},
					&cli.IntFlag{Name: "offset", Usage: "index of the first experiment"},
				},
				Action: experimentList,
			},
			{
				Name:  "get",
				Usage: "Show an experiment",
				Flags: []cli.Flag{
					idFlag,
					&cli.BoolFlag{Name: "resources", Aliases: []string{"r"}, Usage: "nodes of the experiment"},
					&cli.BoolFlag{Name: "id-list", Usage: "node ids of the experiment"},
					&cli.BoolFlag{Name: "state", Aliases: []string{"s"}, Usage: "experiment state"},
					&cli.BoolFlag{Name: "data", Usage: "experiment archive"},
				},
				Action: experimentGet,
			},
			{
				Name:   "stop",
				Usage:  "Stop an experiment",
				Flags:  []cli.Flag{idFlag},
				Action: experimentStop,
			},
		},
	}
}

func experimentSubmit(c *cli.Context) error {
	files := connection.Files{}

	desc, err := readUserFile(c.String("description"))
	if err != nil {
		return err
	}
	files = append(files, connection.File{Name: descriptionPart, Data: desc})

	for _, path := range c.StringSlice("firmware") {
		data, err := readUserFile(path)
		if err != nil {
			return err
		}
		files = append(files, connection.File{Name: filepath.Base(path), Data: data})
	}

	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.SubmitExperiment(ctx, files)
	if err != nil {
		return fmt.Errorf("failed to submit experiment: %w", err)
	}
	return printResult(c, res)
}

func experimentList(c *cli.Context) error {
	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.GetExperiments(ctx, c.String("state"), c.Int("limit"), c.Int("offset"))
	if err != nil {
		return fmt.Errorf("failed to list experiments: %w", err)
	}
	return printResult(c, res)
}

func experimentGet(c *cli.Context) error {
	option := domain.InfoAll
	n := 0
	for flag, opt := range map[string]domain.InfoOption{
		"resources": domain.InfoResources,
		"id-list":   domain.InfoIDs,
		"state":     domain.InfoState,
		"data":      domain.InfoData,
	} {
		if c.Bool(flag) {
			option = opt
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("--resources, --id-list, --state and --data are mutually exclusive")
	}

	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.GetExperimentInfo(ctx, c.Int("id"), option)
	if err != nil {
		return fmt.Errorf("failed to get experiment %d: %w", c.Int("id"), err)
	}
	return printResult(c, res)
}

func experimentStop(c *cli.Context) error {
	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.StopExperiment(ctx, c.Int("id"))
	if err != nil {
		return fmt.Errorf("failed to stop experiment %d: %w", c.Int("id"), err)
	}
	return printResult(c, res)
}

// readUserFile reads a file named on the command line.
func readUserFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
