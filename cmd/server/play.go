package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/adventure"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/shop"
)

// ConsolePlayerID is the player every console line acts for
const ConsolePlayerID = "console_user"

const msgTryLater = "出错了，请稍后再试~"

var playerID string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the console",
	Long: `Play the storyteller from the terminal. Each line is a command:

  /创建调查员            roll three candidates
  /选择调查员 N          pick a candidate
  /st 手枪30步枪20       spend skill points and finish creation
  /调查员信息            show the investigator
  /查看背包              list the pack
  /使用物品 ID           equip an item
  /查看物品 ID           describe an item
  /今日商店              list today's shop
  /购买 ID N             buy N of an item
  /冒险                  start today's adventure
  /行动 动作             act in the fight
  /状态                  show the fight
  /放弃                  abandon the fight
  /退出                  quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playerID, "player", ConsolePlayerID, "player id to act as")
	addStoreFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Logs go to stderr so they never interleave with the story
	cfg.InstallLogger(os.Stderr)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	c := &console{
		playerID:     playerID,
		adventure:    svc.adventure,
		investigator: svc.investigator,
		shop:         svc.shop,
		out:          cmd.OutOrStdout(),
	}
	return c.run(ctx, cmd.InOrStdin())
}

// console turns command lines into orchestrator calls and renders replies
type console struct {
	playerID     string
	adventure    adventure.Service
	investigator investigator.Service
	shop         shop.Service
	out          io.Writer
}

func (c *console) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !c.handle(ctx, scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one line; it returns false when the player quits
func (c *console) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	command, args := fields[0], fields[1:]

	var err error
	switch command {
	case "/退出":
		return false
	case "/冒险":
		err = c.startAdventure(ctx)
	case "/行动":
		err = c.act(ctx, args)
	case "/状态":
		err = c.status(ctx)
	case "/放弃":
		err = c.abandon(ctx)
	case "/创建调查员":
		err = c.createCandidates(ctx)
	case "/选择调查员":
		err = c.chooseCandidate(ctx, args)
	case "/st":
		err = c.allocateSkills(ctx, args)
	case "/调查员信息":
		err = c.showInvestigator(ctx)
	case "/查看背包":
		err = c.showInventory(ctx)
	case "/使用物品":
		err = c.equip(ctx, args)
	case "/查看物品":
		err = c.showItem(ctx, args)
	case "/今日商店":
		err = c.showShop(ctx)
	case "/购买":
		err = c.buy(ctx, args)
	default:
		c.println("未知的指令哦~")
	}

	if err != nil {
		c.printErr(err)
	}
	return true
}

func (c *console) startAdventure(ctx context.Context) error {
	out, err := c.adventure.Start(ctx, &adventure.StartInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.printLines(out.Messages)
	return nil
}

func (c *console) act(ctx context.Context, args []string) error {
	if len(args) != 1 {
		c.println("请输入要进行的动作，例如: /行动 格斗")
		return nil
	}
	out, err := c.adventure.Act(ctx, &adventure.ActInput{PlayerID: c.playerID, Action: args[0]})
	if err != nil {
		return err
	}
	c.printLines(out.Messages)
	return nil
}

func (c *console) status(ctx context.Context) error {
	out, err := c.adventure.Status(ctx, &adventure.StatusInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.printf("调查员HP:%d/%d\n%sHP:%d\n", out.PlayerHP, out.PlayerMaxHP, out.MonsterName, out.MonsterHP)
	if out.MaxAmmo > 0 {
		c.printf("弹药:%d/%d\n", out.Ammo, out.MaxAmmo)
	}
	c.printf("可用动作: %s\n", strings.Join(out.Actions, " "))
	return nil
}

func (c *console) abandon(ctx context.Context) error {
	out, err := c.adventure.Abandon(ctx, &adventure.AbandonInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.println(out.Message)
	return nil
}

func (c *console) createCandidates(ctx context.Context) error {
	out, err := c.investigator.CreateCandidates(ctx, &investigator.CreateCandidatesInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.printf("欢迎来到克苏鲁的世界~\n请选择你想要创建的调查员属性:\n/选择调查员[1-%d]\n", len(out.Candidates))
	for i, candidate := range out.Candidates {
		c.printf("%d. %s\n", i+1, formatCandidate(candidate))
	}
	return nil
}

func (c *console) chooseCandidate(ctx context.Context, args []string) error {
	index, ok := intArg(args, 0)
	if !ok {
		c.println("请输入调查员序号，例如: /选择调查员 1")
		return nil
	}
	out, err := c.investigator.ChooseCandidate(ctx, &investigator.ChooseCandidateInput{
		PlayerID: c.playerID,
		Index:    index,
	})
	if err != nil {
		return err
	}
	c.printf("选择成功\n%s\n接下来需要选择分配技能了哦~\n", formatCandidate(out.Candidate))
	c.printf("共有【%d】点技能点可以分配，请按格式输入技能分配(例如: /st 手枪30步枪20)\n技能上限75\n", out.SkillPoints)
	return nil
}

func (c *console) allocateSkills(ctx context.Context, args []string) error {
	out, err := c.investigator.AllocateSkills(ctx, &investigator.AllocateSkillsInput{
		PlayerID:   c.playerID,
		Allocation: strings.Join(args, ""),
	})
	if err != nil {
		return err
	}
	c.printf("调查员创建完成了哦~\n%s\n", formatInvestigator(out.Investigator))
	return nil
}

func (c *console) showInvestigator(ctx context.Context) error {
	out, err := c.investigator.Get(ctx, &investigator.GetInput{PlayerID: c.playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			c.println(adventure.MsgNoInvestigator)
			return nil
		}
		return err
	}
	balance, err := c.shop.Balance(ctx, &shop.BalanceInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.println(formatInvestigator(out.Investigator))
	c.printf("乌帕:%d\n", balance.Gold)
	return nil
}

func (c *console) showInventory(ctx context.Context) error {
	out, err := c.investigator.Inventory(ctx, &investigator.InventoryInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		c.println("背包是空的哦~")
		return nil
	}
	for _, item := range out.Items {
		mark := ""
		if item.Equipped {
			mark = " [已装备]"
		}
		c.printf("%s ID：%s 数量：%d%s\n", item.Name, item.ItemID, item.Quantity, mark)
	}
	return nil
}

func (c *console) equip(ctx context.Context, args []string) error {
	if len(args) != 1 {
		c.println("请输入物品ID，例如: /使用物品 102")
		return nil
	}
	out, err := c.investigator.Equip(ctx, &investigator.EquipInput{PlayerID: c.playerID, ItemID: args[0]})
	if err != nil {
		return err
	}
	c.printf("装备物品成功,装备:%s, 部位:%s\n", out.Item.Name, out.Item.Slot)
	return nil
}

func (c *console) showItem(ctx context.Context, args []string) error {
	if len(args) != 1 {
		c.println("请输入物品ID，例如: /查看物品 102")
		return nil
	}
	out, err := c.investigator.ItemDetails(ctx, &investigator.ItemDetailsInput{ItemID: args[0]})
	if err != nil {
		return err
	}
	c.println(formatItem(out.Item))
	return nil
}

func (c *console) showShop(ctx context.Context) error {
	out, err := c.shop.Today(ctx, &shop.TodayInput{})
	if err != nil {
		return err
	}
	c.printf("今日商店(%s):\n", out.Shop.Date)
	for _, offer := range out.Shop.Offers {
		c.printf("%s\nID：%s 价格：%d乌帕\n", offer.Name, offer.ItemID, offer.Price)
	}
	return nil
}

func (c *console) buy(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.println("请输入物品ID和数量，例如: /购买 401 2")
		return nil
	}
	quantity := 1
	if len(args) > 1 {
		n, ok := intArg(args, 1)
		if !ok {
			c.println("购买数量需要是数字哦~")
			return nil
		}
		quantity = n
	}
	out, err := c.shop.Buy(ctx, &shop.BuyInput{PlayerID: c.playerID, ItemID: args[0], Quantity: quantity})
	if err != nil {
		return err
	}
	c.printf("成功购买%d件%s。\n", out.Quantity, out.Offer.Name)
	return nil
}

// printErr shows the player-facing message; internal failures are logged
// and replaced with a generic reply
func (c *console) printErr(err error) {
	if errors.IsInternal(err) {
		slog.Error("Console command failed", "player_id", c.playerID, "error", err)
		c.println(msgTryLater)
		return
	}
	c.println(errors.GetMessage(err))
}

func (c *console) printLines(lines []string) {
	for _, line := range lines {
		c.println(line)
	}
}

func (c *console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func intArg(args []string, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatCandidate(cand *investigator.Candidate) string {
	var b strings.Builder
	for _, name := range entities.AttributeOrder {
		fmt.Fprintf(&b, "%s:%d ", name, cand.Attributes[name])
	}
	fmt.Fprintf(&b, "SAN:%d HP:%d DB:%s 总点数:%d", cand.SAN, cand.HP, cand.DamageBonus, cand.Total)
	return b.String()
}

func formatInvestigator(inv *entities.Investigator) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s的角色属性为:\n", inv.Name)
	for _, name := range entities.AttributeOrder {
		fmt.Fprintf(&b, "%s:%d ", name, inv.Attribute(name, 0))
	}
	fmt.Fprintf(&b, "\nHP:%d SAN:%d DB:%s 天数:%d\n", inv.HP, inv.SAN, inv.DamageBonus, inv.Day)
	for _, name := range inv.SkillNames() {
		fmt.Fprintf(&b, "%s:%d ", name, inv.Skills[name])
	}
	b.WriteString("\n已装备：")
	for _, slot := range []entities.Slot{entities.SlotMelee, entities.SlotRanged, entities.SlotArmor} {
		id := inv.EquippedID(slot)
		if id == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s：%s", slot, itemName(inv, id))
	}
	return b.String()
}

func itemName(inv *entities.Investigator, id string) string {
	for _, item := range inv.Inventory {
		if item.ItemID == id && item.Name != "" {
			return item.Name
		}
	}
	return id
}

func formatItem(item *entities.Equipment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ID：%s", item.Name, item.ID)
	if item.Slot != "" {
		fmt.Fprintf(&b, "\n部位：%s", item.Slot)
	}
	if item.Damage != "" {
		fmt.Fprintf(&b, "\n伤害：%s", item.Damage)
	}
	if item.Armor > 0 {
		fmt.Fprintf(&b, "\n护甲：%d", item.Armor)
	}
	if item.Ammo > 0 {
		fmt.Fprintf(&b, "\n弹药：%d", item.Ammo)
	}
	if len(item.Actions) > 0 {
		fmt.Fprintf(&b, "\n动作：%s", strings.Join(item.Actions, " "))
	}
	if item.Description != "" {
		fmt.Fprintf(&b, "\n%s", item.Description)
	}
	return b.String()
}
