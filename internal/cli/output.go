package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoundType:
		o.printRoundType(v)
	case RoundTypeList:
		o.printRoundTypeList(v)
	case WeaponList:
		o.printWeaponList(v)
	case HealthResult:
		o.printHealthResult(v)
	case TokenResult:
		o.printTokenResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RoundType response type (matches API)
type RoundType struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	TeamSize              int    `json:"team_size"`
	PrimaryWeapon         string `json:"primary_weapon,omitempty"`
	SecondaryWeapon       string `json:"secondary_weapon,omitempty"`
	UsePreferredPrimary   bool   `json:"use_preferred_primary"`
	PrimaryPreference     string `json:"primary_preference,omitempty"`
	UsePreferredSecondary bool   `json:"use_preferred_secondary"`
	Armor                 bool   `json:"armor"`
	Helmet                bool   `json:"helmet"`
	EnabledByDefault      bool   `json:"enabled_by_default"`
	Special               bool   `json:"special"`
}

// RoundTypeList response type
type RoundTypeList struct {
	RoundTypes []RoundType `json:"round_types"`
}

// Weapon response type
type Weapon struct {
	Tag      string `json:"tag"`
	Category string `json:"category"`
}

// WeaponList response type
type WeaponList struct {
	Weapons []Weapon `json:"weapons"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// TokenResult is a generated admin token and the hash to configure on the server
type TokenResult struct {
	Token string `json:"token,omitempty"`
	Hash  string `json:"hash"`
}

func (o *Output) printRoundType(rt RoundType) {
	fmt.Fprintf(o.w, "Round Type: %s (%d)\n", rt.Name, rt.ID)
	fmt.Fprintf(o.w, "Team Size: %d\n", rt.TeamSize)
	fmt.Fprintf(o.w, "Primary: %s\n", slotText(rt.PrimaryWeapon, rt.UsePreferredPrimary, rt.PrimaryPreference))
	fmt.Fprintf(o.w, "Secondary: %s\n", slotText(rt.SecondaryWeapon, rt.UsePreferredSecondary, ""))
	fmt.Fprintf(o.w, "Armor: %s\n", yesNo(rt.Armor))
	fmt.Fprintf(o.w, "Helmet: %s\n", yesNo(rt.Helmet))
	fmt.Fprintf(o.w, "Enabled By Default: %s\n", yesNo(rt.EnabledByDefault))
	if rt.Special {
		fmt.Fprintln(o.w, "Special: yes")
	}
}

func (o *Output) printRoundTypeList(l RoundTypeList) {
	if len(l.RoundTypes) == 0 {
		fmt.Fprintln(o.w, "No round types registered")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTEAM\tPRIMARY\tSECONDARY\tARMOR\tENABLED")
	for _, rt := range l.RoundTypes {
		name := rt.Name
		if rt.Special {
			name += " [special]"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			rt.ID, name, rt.TeamSize,
			slotText(rt.PrimaryWeapon, rt.UsePreferredPrimary, rt.PrimaryPreference),
			slotText(rt.SecondaryWeapon, rt.UsePreferredSecondary, ""),
			armorText(rt.Armor, rt.Helmet),
			yesNo(rt.EnabledByDefault),
		)
	}
	_ = tw.Flush()
}

func (o *Output) printWeaponList(l WeaponList) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tCATEGORY")
	for _, wpn := range l.Weapons {
		fmt.Fprintf(tw, "%s\t%s\n", wpn.Tag, wpn.Category)
	}
	_ = tw.Flush()
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

func (o *Output) printTokenResult(t TokenResult) {
	if t.Token != "" {
		fmt.Fprintf(o.w, "Token: %s\n", t.Token)
	}
	fmt.Fprintf(o.w, "Hash: %s\n", t.Hash)
}

// slotText describes how a loadout slot is filled
func slotText(weapon string, preferred bool, category string) string {
	switch {
	case weapon != "":
		return weapon
	case preferred && category != "":
		return "preferred " + category
	case preferred:
		return "preferred"
	default:
		return "-"
	}
}

func armorText(armor, helmet bool) string {
	switch {
	case armor && helmet:
		return "kevlar+helmet"
	case armor:
		return "kevlar"
	case helmet:
		return "helmet"
	default:
		return "none"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
