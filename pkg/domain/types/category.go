package types

import "github.com/m-mizutani/goerr/v2"

// Category classifies a repository and decides the collaborator policy.
// Restricted categories (sox, banking) grant admin access to individual
// code owners only; normal repositories are shared with org teams.
type Category string

const (
	CategorySox     Category = "sox"
	CategoryBanking Category = "banking"
	CategoryNormal  Category = "normal"
)

var allCategories = []Category{CategorySox, CategoryBanking, CategoryNormal}

func Categories() []Category {
	return allCategories
}

func (x Category) Validate() error {
	for _, c := range allCategories {
		if x == c {
			return nil
		}
	}
	return goerr.Wrap(ErrInvalidOption, "invalid category", goerr.V("value", string(x)))
}

// Restricted reports whether the category requires individual code-owner
// collaborators instead of teams.
func (x Category) Restricted() bool {
	return x == CategorySox || x == CategoryBanking
}

func (x Category) String() string { return string(x) }

// Region identifies where the repository is operated.
type Region string

const (
	RegionChina        Region = "china"
	RegionNorthAmerica Region = "north-america"
)

var allRegions = []Region{RegionChina, RegionNorthAmerica}

func Regions() []Region {
	return allRegions
}

func (x Region) Validate() error {
	for _, r := range allRegions {
		if x == r {
			return nil
		}
	}
	return goerr.Wrap(ErrInvalidOption, "invalid region", goerr.V("value", string(x)))
}

func (x Region) String() string { return string(x) }
