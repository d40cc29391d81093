package command

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

// ProfileCommand returns the profile subcommand group.
func ProfileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Manage node monitoring profiles",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List profiles",
				Action: profileList,
			},
			{
				Name:      "get",
				Usage:     "Show a profile",
				ArgsUsage: "NAME",
				Action:    profileGet,
			},
			{
				Name:      "add",
				Usage:     "Store a profile",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "profile JSON `FILE`", Required: true},
				},
				Action: profileAdd,
			},
			{
				Name:      "del",
				Aliases:   []string{"delete"},
				Usage:     "Delete a profile",
				ArgsUsage: "NAME",
				Action:    profileDel,
			},
		},
	}
}

func profileName(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("profile name is required")
	}
	return c.Args().First(), nil
}

func profileList(c *cli.Context) error {
	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	return printResult(c, res)
}

func profileGet(c *cli.Context) error {
	name, err := profileName(c)
	if err != nil {
		return err
	}
	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.GetProfile(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get profile %s: %w", name, err)
	}
	return printResult(c, res)
}

func profileAdd(c *cli.Context) error {
	name, err := profileName(c)
	if err != nil {
		return err
	}
	data, err := readUserFile(c.String("file"))
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("%s is not valid JSON", c.String("file"))
	}

	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.AddProfile(ctx, name, json.RawMessage(data))
	if err != nil {
		return fmt.Errorf("failed to add profile %s: %w", name, err)
	}
	return printResult(c, res)
}

func profileDel(c *cli.Context) error {
	name, err := profileName(c)
	if err != nil {
		return err
	}
	client, ctx, err := EnsureClient(c, true)
	if err != nil {
		return err
	}
	res, err := client.DelProfile(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", name, err)
	}
	return printResult(c, res)
}
