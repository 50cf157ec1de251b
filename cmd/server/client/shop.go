package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	storytellerv1alpha1 "github.com/KirkDiggler/rpg-storyteller/internal/handlers/storyteller/v1alpha1"
)

var investigatorCmd = &cobra.Command{
	Use:   "investigator",
	Short: "Show the investigator and wallet",
	RunE:  runInvestigator,
}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List today's shop",
	RunE:  runShop,
}

var buyCmd = &cobra.Command{
	Use:   "buy [item-id] [quantity]",
	Short: "Buy an item from today's shop",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runBuy,
}

func runInvestigator(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetInvestigator(ctx, &storytellerv1alpha1.GetInvestigatorRequest{PlayerID: playerID})
	if err != nil {
		return describeError(err)
	}

	inv := resp.Investigator
	fmt.Printf("Name: %s  Day: %d  Alive: %t\n", inv.Name, inv.Day, inv.Alive)
	fmt.Printf("HP: %d  SAN: %d  DB: %s  Gold: %d\n", inv.HP, inv.SAN, inv.DamageBonus, resp.Gold)
	for _, name := range inv.SkillNames() {
		fmt.Printf("  %s: %d\n", name, inv.Skills[name])
	}
	return nil
}

func runShop(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetShop(ctx, &storytellerv1alpha1.GetShopRequest{})
	if err != nil {
		return describeError(err)
	}

	fmt.Printf("Shop for %s:\n", resp.Date)
	for _, offer := range resp.Offers {
		fmt.Printf("  %-6s %-12s %d\n", offer.ItemID, offer.Name, offer.Price)
	}
	return nil
}

func runBuy(_ *cobra.Command, args []string) error {
	quantity := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", args[1], err)
		}
		quantity = n
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Buy(ctx, &storytellerv1alpha1.BuyRequest{
		PlayerID: playerID,
		ItemID:   args[0],
		Quantity: quantity,
	})
	if err != nil {
		return describeError(err)
	}

	fmt.Printf("Bought %d x %s, %d gold left\n", resp.Quantity, resp.Name, resp.Gold)
	return nil
}
