package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// ResourcesCommand returns the resources command.
func ResourcesCommand() *cli.Command {
	return &cli.Command{
		Name:  "resources",
		Usage: "List testbed nodes",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "id-list", Usage: "print node ids (1-34+72 form) instead of node details"},
			&cli.StringFlag{Name: "site", Aliases: []string{"s"}, Usage: "restrict to one site"},
		},
		Action: func(c *cli.Context) error {
			client, ctx, err := EnsureClient(c, true)
			if err != nil {
				return err
			}
			res, err := client.GetResources(ctx, c.Bool("id-list"), c.String("site"))
			if err != nil {
				return fmt.Errorf("failed to list resources: %w", err)
			}
			return printResult(c, res)
		},
	}
}

// SitesCommand returns the sites command. It needs no account.
func SitesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sites",
		Usage: "List testbed sites",
		Action: func(c *cli.Context) error {
			client, ctx, err := EnsureClient(c, false)
			if err != nil {
				return err
			}
			res, err := client.GetSites(ctx)
			if err != nil {
				return fmt.Errorf("failed to list sites: %w", err)
			}
			return printResult(c, res)
		},
	}
}
