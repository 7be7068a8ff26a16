package usecase

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Boilerplate file contents. Fixed template strings with a few request
// fields substituted; anything fancier belongs in the new repository
// itself.

const cloudBuildYAML = `steps:
  - name: 'gcr.io/cloud-builders/git'
    args: ['clone', 'https://github.com/{{.Org}}/{{.Repo}}']
  - name: 'gcr.io/cloud-builders/docker'
    args: ['build', '-t', 'gcr.io/$PROJECT_ID/{{.Repo}}:$COMMIT_SHA', '.']
  - name: 'gcr.io/cloud-builders/docker'
    args: ['push', 'gcr.io/$PROJECT_ID/{{.Repo}}:$COMMIT_SHA']

images:
  - 'gcr.io/$PROJECT_ID/{{.Repo}}:$COMMIT_SHA'
`

const licenseText = `MIT License

Copyright (c) 2025 {{.Org}}

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
`

const readmeMD = `# {{.Repo}}

{{.Description}}

## Region
{{.Region}}

## Category
{{.Category}}
`

const issueTemplateMD = `---
name: Bug report
about: Create a report to help us improve
title: ''
labels: bug
assignees: ''

---

**Describe the bug**
A clear and concise description of what the bug is.

**To Reproduce**
Steps to reproduce the behavior:
1. Go to '...'
`

const prTemplateMD = `# Pull Request

## Description
Please include a summary of the change and which issue is fixed.

## Type of change
- [ ] Bug fix
- [ ] New feature
- [ ] Breaking change
- [ ] Documentation update

## Checklist
- [ ] My code follows the style guidelines
- [ ] I have performed a self-review
- [ ] I have commented my code
- [ ] I have made corresponding changes to the documentation
- [ ] My changes generate no new warnings
`

const securityMD = `# Security Policy

## Reporting a Vulnerability
Please report security issues to security@{{.Org}}.com.
`

const contributingMD = `# Contributing

Thank you for considering contributing!

## How to contribute
- Fork the repo
- Create a feature branch
- Submit a pull request
`

const tektonYAML = `apiVersion: tekton.dev/v1beta1
kind: Pipeline
metadata:
  name: {{.Repo}}-pipeline
spec:
  tasks:
    - name: echo
      taskSpec:
        steps:
          - name: echo
            image: ubuntu
            script: |
              echo Hello Tekton!
`

var boilerplateTemplates = map[model.Boilerplate]*template.Template{
	model.BoilerplateCloudBuild:    template.Must(template.New("cloudbuild").Parse(cloudBuildYAML)),
	model.BoilerplateLicense:       template.Must(template.New("license").Parse(licenseText)),
	model.BoilerplateReadme:        template.Must(template.New("readme").Parse(readmeMD)),
	model.BoilerplateIssueTemplate: template.Must(template.New("issue").Parse(issueTemplateMD)),
	model.BoilerplatePRTemplate:    template.Must(template.New("pr").Parse(prTemplateMD)),
	model.BoilerplateSecurity:      template.Must(template.New("security").Parse(securityMD)),
	model.BoilerplateContributing:  template.Must(template.New("contributing").Parse(contributingMD)),
	model.BoilerplateTekton:        template.Must(template.New("tekton").Parse(tektonYAML)),
}

var commitMessages = map[model.Boilerplate]string{
	model.BoilerplateCloudBuild:    "Add default cloudbuild.yaml",
	model.BoilerplateCodeowners:    "Add CODEOWNERS file",
	model.BoilerplateLicense:       "Add LICENSE file",
	model.BoilerplateReadme:        "Add README.md file",
	model.BoilerplateIssueTemplate: "Add default bug report issue template",
	model.BoilerplatePRTemplate:    "Add default pull request template",
	model.BoilerplateSecurity:      "Add SECURITY.md file",
	model.BoilerplateContributing:  "Add CONTRIBUTING.md file",
	model.BoilerplateTekton:        "Add Tekton pipeline template",
}

type templateInput struct {
	Org         types.OrgName
	Repo        types.RepoName
	Description string
	Category    types.Category
	Region      types.Region
}

// RenderBoilerplate renders the file content of a capability tag with
// the request fields substituted. CODEOWNERS is built directly from the
// code-owner list.
func RenderBoilerplate(tag model.Boilerplate, req model.ProvisioningRequest) ([]byte, error) {
	if tag == model.BoilerplateCodeowners {
		return renderCodeowners(req.CodeOwners), nil
	}

	tmpl, ok := boilerplateTemplates[tag]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown boilerplate file", goerr.V("tag", tag))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateInput{
		Org:         req.Org,
		Repo:        req.Repo,
		Description: req.Description,
		Category:    req.Category,
		Region:      req.Region,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to render boilerplate", goerr.V("tag", tag))
	}

	return buf.Bytes(), nil
}

// renderCodeowners makes every code owner a required reviewer of all
// paths.
func renderCodeowners(owners []types.UserName) []byte {
	mentions := make([]string, 0, len(owners))
	for _, owner := range owners {
		mentions = append(mentions, "@"+owner.String())
	}
	return []byte("* " + strings.Join(mentions, " ") + "\n")
}

func commitMessage(tag model.Boilerplate) string {
	return commitMessages[tag]
}
