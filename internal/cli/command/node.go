package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/iotlab-go/internal/core/domain"
	"github.com/yndnr/iotlab-go/internal/core/service"
)

// NodeCommand returns the node command.
func NodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "node",
		Usage: "Start, stop, reset or flash experiment nodes",
		Description: "Exactly one of --start, --stop, --reset or --update is required.\n" +
			"Without --list or --exclude the command targets every node of the experiment.\n" +
			"Node lists use the form site,archi,ids (grenoble,m3,1-5+7) or a full node address.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "start", Aliases: []string{"sta"}, Usage: "start command"},
			&cli.BoolFlag{Name: "stop", Aliases: []string{"sto"}, Usage: "stop command"},
			&cli.BoolFlag{Name: "reset", Aliases: []string{"r"}, Usage: "reset command"},
			&cli.StringFlag{Name: "update", Aliases: []string{"up"}, Usage: "flash the firmware at `PATH`"},
			&cli.IntFlag{Name: "id", Aliases: []string{"i"}, Usage: "experiment id (default: the running experiment)"},
			&cli.StringSliceFlag{Name: "list", Aliases: []string{"l"}, Usage: "nodes to target, repeatable"},
			&cli.StringSliceFlag{Name: "exclude", Aliases: []string{"e"}, Usage: "nodes to skip, repeatable"},
			&cli.BoolFlag{Name: "dry-run", Usage: "print the target nodes without sending the command"},
		},
		Action: nodeRun,
	}
}

func nodeRun(c *cli.Context) error {
	req, err := parseNodeRequest(c)
	if err != nil {
		return err
	}

	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}

	plan, res, err := service.NewNodeService(client).Run(ctx, req)
	if err != nil {
		return fmt.Errorf("node %s failed: %w", req.Command, err)
	}
	if req.DryRun {
		return printResult(c, plan)
	}
	return printResult(c, res)
}

// parseNodeRequest checks the flag combination and parses node lists.
func parseNodeRequest(c *cli.Context) (service.NodeRequest, error) {
	req := service.NodeRequest{
		ExperimentID: c.Int("id"),
		DryRun:       c.Bool("dry-run"),
	}

	if c.IsSet("id") && req.ExperimentID <= 0 {
		return req, fmt.Errorf("--id must be a positive experiment id, got %d", req.ExperimentID)
	}

	var chosen []string
	for _, name := range []string{"start", "stop", "reset"} {
		if c.Bool(name) {
			chosen = append(chosen, name)
		}
	}
	if c.IsSet("update") {
		chosen = append(chosen, "update")
		req.FirmwarePath = c.String("update")
	}
	if len(chosen) != 1 {
		return req, fmt.Errorf("exactly one of --start, --stop, --reset or --update is required")
	}
	cmd, err := domain.ParseCommand(chosen[0])
	if err != nil {
		return req, err
	}
	req.Command = cmd

	if c.IsSet("list") && c.IsSet("exclude") {
		return req, fmt.Errorf("--list and --exclude cannot be combined")
	}

	if req.Include, err = nodeGroups(c, "list"); err != nil {
		return req, err
	}
	if req.Exclude, err = nodeGroups(c, "exclude"); err != nil {
		return req, err
	}
	return req, nil
}

// nodeGroups parses every occurrence of a list flag. It returns nil when
// the flag was not given.
func nodeGroups(c *cli.Context, name string) ([][]string, error) {
	if !c.IsSet(name) {
		return nil, nil
	}
	specs := c.StringSlice(name)
	groups := make([][]string, 0, len(specs))
	for _, spec := range specs {
		nodes, err := domain.ParseNodeList(spec)
		if err != nil {
			return nil, fmt.Errorf("--%s %q: %w", name, spec, err)
		}
		groups = append(groups, nodes)
	}
	return groups, nil
}
