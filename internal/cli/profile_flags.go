package cli

import (
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/spf13/pflag"
)

// profileFlags collects a profile from command-line flags. Only flags the
// user actually set end up in the update payload.
type profileFlags struct {
	skinType  string
	season    string
	climate   string
	concerns  []string
	allergies []string
	products  []string
}

func (f *profileFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.skinType, "skin", "", "Skin type ("+enumHelp(domain.AllSkinTypes)+")")
	fs.StringVar(&f.season, "season", "", "Current season ("+enumHelp(domain.AllSeasons)+")")
	fs.StringVar(&f.climate, "climate", "", "Climate ("+enumHelp(domain.AllClimates)+")")
	fs.StringSliceVar(&f.concerns, "concerns", nil, "Skin concerns ("+enumHelp(domain.AllConcerns)+")")
	fs.StringSliceVar(&f.allergies, "allergies", nil, "Known allergies")
	fs.StringSliceVar(&f.products, "products", nil, "Products currently in use")
}

// updateArgs returns the updateUserProfile payload for the flags that were
// set, or nil when none were.
func (f *profileFlags) updateArgs(fs *pflag.FlagSet) map[string]any {
	args := map[string]any{}
	if fs.Changed("skin") {
		args["skinType"] = f.skinType
	}
	if fs.Changed("season") {
		args["season"] = f.season
	}
	if fs.Changed("climate") {
		args["climate"] = f.climate
	}
	if fs.Changed("concerns") {
		args["concerns"] = f.concerns
	}
	if fs.Changed("allergies") {
		args["allergies"] = f.allergies
	}
	if fs.Changed("products") {
		args["currentProducts"] = f.products
	}
	if len(args) == 0 {
		return nil
	}
	args["message"] = "Profile updated from command-line flags."
	return args
}

func enumHelp[T ~string](vals []T) string {
	return strings.Join(stringsOf(vals), "|")
}
