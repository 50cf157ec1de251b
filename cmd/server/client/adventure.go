package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	storytellerv1alpha1 "github.com/KirkDiggler/rpg-storyteller/internal/handlers/storyteller/v1alpha1"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start today's adventure",
	RunE:  runStart,
}

var actCmd = &cobra.Command{
	Use:   "act [action]",
	Short: "Act in the current fight",
	Long: `Resolve one action in the current fight. Examples:

  act 格斗
  act 射击
  act 闪避`,
	Args: cobra.ExactArgs(1),
	RunE: runAct,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current fight",
	RunE:  runStatus,
}

var abandonCmd = &cobra.Command{
	Use:   "abandon",
	Short: "Abandon the current fight",
	RunE:  runAbandon,
}

func runStart(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StartAdventure(ctx, &storytellerv1alpha1.StartAdventureRequest{PlayerID: playerID})
	if err != nil {
		return describeError(err)
	}

	fmt.Printf("Adventure: %s (monster %s)\n\n", resp.AdventureID, resp.MonsterID)
	printMessages(resp.Messages)
	return nil
}

func runAct(_ *cobra.Command, args []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Act(ctx, &storytellerv1alpha1.ActRequest{PlayerID: playerID, Action: args[0]})
	if err != nil {
		return describeError(err)
	}

	printMessages(resp.Messages)
	if resp.Outcome != nil {
		o := resp.Outcome
		fmt.Printf("\nResult: %s  HP: %d  Day: %d\n", o.Result, o.PlayerHP, o.Day)
		if o.Gold > 0 || o.ItemID != "" {
			fmt.Printf("Loot: %d gold %s\n", o.Gold, o.ItemName)
		}
		for _, g := range o.Growth {
			fmt.Printf("  %s %d (roll %d) +%d\n", g.Skill, g.Rating, g.Roll, g.Gain)
		}
		if len(o.BrokenItems) > 0 {
			fmt.Printf("Broken: %s\n", strings.Join(o.BrokenItems, ", "))
		}
	}
	return nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetStatus(ctx, &storytellerv1alpha1.GetStatusRequest{PlayerID: playerID})
	if err != nil {
		return describeError(err)
	}

	fmt.Printf("Adventure: %s\n", resp.AdventureID)
	fmt.Printf("State: %s  Turn: %s\n", resp.State, resp.Turn)
	fmt.Printf("Investigator HP: %d/%d\n", resp.PlayerHP, resp.PlayerMaxHP)
	fmt.Printf("%s HP: %d\n", resp.MonsterName, resp.MonsterHP)
	if resp.MaxAmmo > 0 {
		fmt.Printf("Ammo: %d/%d\n", resp.Ammo, resp.MaxAmmo)
	}
	fmt.Printf("Actions: %s\n", strings.Join(resp.Actions, " "))
	return nil
}

func runAbandon(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AbandonAdventure(ctx, &storytellerv1alpha1.AbandonAdventureRequest{PlayerID: playerID})
	if err != nil {
		return describeError(err)
	}

	fmt.Println(resp.Message)
	return nil
}

func printMessages(messages []string) {
	for _, m := range messages {
		fmt.Println(m)
	}
}
