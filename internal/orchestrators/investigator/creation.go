package investigator

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-storyteller/internal/damage"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// DefaultCandidateCount is how many candidates one request rolls
const DefaultCandidateCount = 3

const attributeMultiplier = 5

var (
	standardAttribute = dice.MustParse("3d6")
	trainedAttribute  = dice.MustParse("2d6+6")

	// Size and education are rolled higher than the rest
	attributeRolls = map[string]*dice.Expression{
		entities.AttrStrength:     standardAttribute,
		entities.AttrConstitution: standardAttribute,
		entities.AttrSize:         trainedAttribute,
		entities.AttrDexterity:    standardAttribute,
		entities.AttrAppearance:   standardAttribute,
		entities.AttrIntelligence: standardAttribute,
		entities.AttrPower:        standardAttribute,
		entities.AttrEducation:    trainedAttribute,
		entities.AttrLuck:         standardAttribute,
	}

	defaultSkills = map[string]int{
		entities.SkillHandgun:  20,
		entities.SkillRifle:    25,
		entities.SkillFighting: 25,
		entities.SkillSpot:     25,
		entities.SkillListen:   20,
		entities.SkillFirstAid: 30,
		entities.SkillMedicine: 1,
	}

	allocationToken = regexp.MustCompile(`[^\d\s]+|\d+`)
)

// Allocation messages shown to the player
const (
	msgAllocationMalformed = "技能设置错误了哦~"
	msgAllocationTooMany   = "当前总点数过多了哦~"
	msgAllocationTooFew    = "当前总点数过少了哦~"
)

func rollCandidate(roller *dice.Roller) (*Candidate, error) {
	c := &Candidate{
		Attributes: make(map[string]int, len(entities.AttributeOrder)),
		Skills:     make(map[string]int, len(defaultSkills)+1),
	}

	for _, name := range entities.AttributeOrder {
		out, err := roller.Roll(attributeRolls[name])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", name)
		}
		value := out.Total * attributeMultiplier
		c.Attributes[name] = value
		c.Total += value
	}

	c.SAN = c.Attributes[entities.AttrPower]
	c.HP = (c.Attributes[entities.AttrConstitution] + c.Attributes[entities.AttrSize]) / 10
	c.DamageBonus = damage.Bonus(c.Attributes[entities.AttrSize], c.Attributes[entities.AttrStrength])

	for name, value := range defaultSkills {
		c.Skills[name] = value
	}
	c.Skills[entities.SkillDodge] = c.Attributes[entities.AttrDexterity] / 2

	return c, nil
}

// parseAllocation reads "手枪30步枪20" into skill points. Repeated skills
// are summed.
func parseAllocation(text string) (map[string]int, int, error) {
	tokens := allocationToken.FindAllString(text, -1)
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil, 0, errors.InvalidArgument(msgAllocationMalformed)
	}

	points := make(map[string]int, len(tokens)/2)
	total := 0
	for i := 0; i < len(tokens); i += 2 {
		name := tokens[i]
		if _, err := strconv.Atoi(name); err == nil {
			return nil, 0, errors.InvalidArgument(msgAllocationMalformed)
		}
		n, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return nil, 0, errors.InvalidArgument(msgAllocationMalformed)
		}
		points[name] += n
		total += n
	}
	return points, total, nil
}

// applyAllocation returns the candidate's skills with points added. The
// budget must be spent exactly and no skill may end above the cap.
func applyAllocation(c *Candidate, points map[string]int, total int) (map[string]int, error) {
	budget := c.SkillPoints()
	switch {
	case total > budget:
		return nil, errors.InvalidArgument(msgAllocationTooMany).
			WithMeta("total", total).WithMeta("budget", budget)
	case total < budget:
		return nil, errors.InvalidArgument(msgAllocationTooFew).
			WithMeta("total", total).WithMeta("budget", budget)
	}

	skills := make(map[string]int, len(c.Skills))
	for name, value := range c.Skills {
		skills[name] = value
	}
	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n := points[name]
		current, ok := skills[name]
		if !ok {
			return nil, errors.InvalidArgumentf("不存在技能%s~", name).WithMeta("skill", name)
		}
		if current+n > entities.MaxAllocatedSkill {
			return nil, errors.InvalidArgumentf("当前技能%s点数高于了%d哦~", name, entities.MaxAllocatedSkill).
				WithMeta("skill", name)
		}
		skills[name] = current + n
	}
	return skills, nil
}
