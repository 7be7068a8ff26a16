package model

import (
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Boilerplate is a capability tag of one boilerplate file that can be
// committed to the new repository. Modeled as a set instead of parallel
// boolean fields so that adding a file type does not grow every call
// site.
type Boilerplate string

const (
	BoilerplateCloudBuild    Boilerplate = "cloudbuild"
	BoilerplateCodeowners    Boilerplate = "codeowners"
	BoilerplateLicense       Boilerplate = "license"
	BoilerplateReadme        Boilerplate = "readme"
	BoilerplateIssueTemplate Boilerplate = "issue-template"
	BoilerplatePRTemplate    Boilerplate = "pr-template"
	BoilerplateSecurity      Boilerplate = "security"
	BoilerplateContributing  Boilerplate = "contributing"
	BoilerplateTekton        Boilerplate = "tekton"
)

// allBoilerplates fixes the commit order of the generated files.
var allBoilerplates = []Boilerplate{
	BoilerplateCloudBuild,
	BoilerplateCodeowners,
	BoilerplateLicense,
	BoilerplateReadme,
	BoilerplateIssueTemplate,
	BoilerplatePRTemplate,
	BoilerplateSecurity,
	BoilerplateContributing,
	BoilerplateTekton,
}

var boilerplatePaths = map[Boilerplate]string{
	BoilerplateCloudBuild:    "cloudbuild.yaml",
	BoilerplateCodeowners:    ".github/CODEOWNERS",
	BoilerplateLicense:       "LICENSE",
	BoilerplateReadme:        "README.md",
	BoilerplateIssueTemplate: ".github/ISSUE_TEMPLATE/bug_report.md",
	BoilerplatePRTemplate:    ".github/PULL_REQUEST_TEMPLATE.md",
	BoilerplateSecurity:      ".github/SECURITY.md",
	BoilerplateContributing:  ".github/CONTRIBUTING.md",
	BoilerplateTekton:        "tekton.yaml",
}

func Boilerplates() []Boilerplate {
	return allBoilerplates
}

// ParseBoilerplate maps a tag name to the capability, rejecting unknown
// names.
func ParseBoilerplate(s string) (Boilerplate, error) {
	tag := Boilerplate(s)
	if _, ok := boilerplatePaths[tag]; !ok {
		return "", goerr.Wrap(types.ErrInvalidOption, "unknown boilerplate file", goerr.V("value", s))
	}
	return tag, nil
}

// Path returns the commit path of the file in the new repository.
func (x Boilerplate) Path() string {
	return boilerplatePaths[x]
}

func (x Boilerplate) String() string { return string(x) }

// BoilerplateSet is the set of enabled boilerplate files of one request.
type BoilerplateSet map[Boilerplate]struct{}

func NewBoilerplateSet(tags ...Boilerplate) BoilerplateSet {
	set := BoilerplateSet{}
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func (x BoilerplateSet) Has(tag Boilerplate) bool {
	_, ok := x[tag]
	return ok
}

func (x BoilerplateSet) Add(tag Boilerplate) {
	x[tag] = struct{}{}
}

// List returns the enabled tags in commit order.
func (x BoilerplateSet) List() []Boilerplate {
	var tags []Boilerplate
	for _, tag := range allBoilerplates {
		if x.Has(tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}
