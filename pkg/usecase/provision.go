package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/utils/errutil"
	"github.com/kagamino/repoforge/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// cloudBuildWebhookURL is the fixed CI endpoint registered by the
// webhook step.
const cloudBuildWebhookURL = "https://cloudbuild.googleapis.com/github/webhook"

// Provision runs the fixed sequence of provisioning steps against a
// newly created repository. Steps 1-7 are fatal on error: the run stops
// and already-applied remote state is left as is, with no rollback or
// retry. Steps 8-10 (secret stores, notification, audit sinks) only log
// their failures.
func (x *UseCase) Provision(ctx context.Context, req model.ProvisioningRequest) (*model.ProvisioningResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx).With(slog.Any("request", req))
	ctx = logging.With(ctx, logger)
	logger.Info("Starting provisioning run")

	result := &model.ProvisioningResult{}

	// 1. Create the repository
	if err := gh.CreateRepository(ctx, &interfaces.CreateRepositoryInput{
		Org:           req.Org,
		Repo:          req.Repo,
		Description:   req.Description,
		DefaultBranch: req.DefaultBranch,
		Private:       true,
		AutoInit:      true,
	}); err != nil {
		return x.abort(ctx, result, model.StepCreateRepo, err)
	}
	result.Record(model.StepCreateRepo, model.StepDone, fmt.Sprintf("%s/%s", req.Org, req.Repo))

	// 2. Replace topics
	if topics := trimEach(req.Topics); len(topics) > 0 {
		if err := gh.ReplaceTopics(ctx, req.Org, req.Repo, topics); err != nil {
			return x.abort(ctx, result, model.StepTopics, err)
		}
		result.Record(model.StepTopics, model.StepDone, strings.Join(topics, ","))
	} else {
		result.Record(model.StepTopics, model.StepSkipped, "no topics")
	}

	// 3. Create labels. Malformed entries were already rejected at
	// input time; a duplicate name fails per platform rules.
	if len(req.Labels) > 0 {
		for _, label := range req.Labels {
			if err := gh.CreateLabel(ctx, req.Org, req.Repo, label); err != nil {
				return x.abort(ctx, result, model.StepLabels, err)
			}
		}
		result.Record(model.StepLabels, model.StepDone, fmt.Sprintf("%d labels", len(req.Labels)))
	} else {
		result.Record(model.StepLabels, model.StepSkipped, "no labels")
	}

	// 4. Register the Cloud Build webhook
	if req.AddWebhook {
		if err := gh.CreateWebhook(ctx, req.Org, req.Repo, &interfaces.CreateWebhookInput{
			URL:         cloudBuildWebhookURL,
			ContentType: "json",
			Events:      []string{"push", "pull_request"},
		}); err != nil {
			return x.abort(ctx, result, model.StepWebhook, err)
		}
		result.Record(model.StepWebhook, model.StepDone, cloudBuildWebhookURL)
	} else {
		result.Record(model.StepWebhook, model.StepSkipped, "webhook disabled")
	}

	// 5. Category-based collaborator routing
	if err := x.assignCollaborators(ctx, req); err != nil {
		return x.abort(ctx, result, model.StepCollaborators, err)
	}
	result.Record(model.StepCollaborators, model.StepDone, string(req.Category))

	// 6. Branch protection
	if err := gh.ProtectBranch(ctx, req.Org, req.Repo, req.DefaultBranch, req.Protection); err != nil {
		return x.abort(ctx, result, model.StepProtection, err)
	}
	result.Record(model.StepProtection, model.StepDone,
		fmt.Sprintf("%d required reviews", req.Protection.RequiredReviews))

	// 7. Boilerplate files
	committed, err := x.commitBoilerplate(ctx, req)
	if err != nil {
		return x.abort(ctx, result, model.StepFiles, err)
	}
	if committed > 0 {
		result.Record(model.StepFiles, model.StepDone, fmt.Sprintf("%d files", committed))
	} else {
		result.Record(model.StepFiles, model.StepSkipped, "no files")
	}

	// Core provisioning is complete; the remaining steps never abort.
	result.Succeeded = true

	x.seedSecrets(ctx, req, result)
	x.notify(ctx, req, result)
	x.writeAudit(ctx, req, result)

	logger.Info("Provisioning run finished", slog.Bool("succeeded", result.Succeeded))

	return result, nil
}

// abort records the failed step and surfaces the error as is.
func (x *UseCase) abort(ctx context.Context, result *model.ProvisioningResult, step model.Step, err error) (*model.ProvisioningResult, error) {
	result.Record(step, model.StepFailed, err.Error())
	logging.From(ctx).Error("Provisioning aborted",
		slog.String("step", string(step)),
		slog.Any("error", err),
	)
	return result, err
}

// assignCollaborators applies the mutually exclusive category policy:
// restricted categories (sox, banking) get the code owners as admin
// collaborators and no teams; normal repositories get the teams with
// push permission and no individual collaborators.
func (x *UseCase) assignCollaborators(ctx context.Context, req model.ProvisioningRequest) error {
	gh := x.clients.GitHub()

	switch req.Category {
	case types.CategorySox, types.CategoryBanking:
		for _, owner := range req.CodeOwners {
			if err := gh.AddCollaborator(ctx, req.Org, req.Repo, owner, interfaces.PermissionAdmin); err != nil {
				return err
			}
		}
		return nil

	case types.CategoryNormal:
		for _, team := range req.Teams {
			if err := gh.AddTeam(ctx, req.Org, req.Repo, team, interfaces.PermissionPush); err != nil {
				return err
			}
		}
		return nil

	default:
		return goerr.Wrap(types.ErrInvalidRequest, "unknown category", goerr.V("category", req.Category))
	}
}

// commitBoilerplate commits one file per enabled capability tag, in the
// fixed order of model.Boilerplates. Returns the number of commits.
func (x *UseCase) commitBoilerplate(ctx context.Context, req model.ProvisioningRequest) (int, error) {
	gh := x.clients.GitHub()

	var committed int
	for _, tag := range req.Files.List() {
		if tag == model.BoilerplateCodeowners && len(req.CodeOwners) == 0 {
			logging.From(ctx).Warn("Skipping CODEOWNERS file without code owners")
			continue
		}

		content, err := RenderBoilerplate(tag, req)
		if err != nil {
			return committed, err
		}

		if err := gh.CommitFile(ctx, req.Org, req.Repo, &interfaces.CommitFileInput{
			Path:    tag.Path(),
			Message: commitMessage(tag),
			Content: content,
			Branch:  req.DefaultBranch,
		}); err != nil {
			return committed, err
		}
		committed++
	}

	return committed, nil
}

func (x *UseCase) seedSecrets(ctx context.Context, req model.ProvisioningRequest, result *model.ProvisioningResult) {
	stores := x.clients.SecretStores()
	if req.Secret == nil || len(stores) == 0 {
		result.Record(model.StepSecrets, model.StepSkipped, "no secret stores")
		return
	}

	var failed []string
	for _, store := range stores {
		if err := store.CreateSecret(ctx, req.Secret.Name, req.Secret.Value); err != nil {
			errutil.HandleError(ctx, "failed to create secret", err)
			failed = append(failed, store.Name())
		}
	}

	if len(failed) > 0 {
		result.Record(model.StepSecrets, model.StepFailed, strings.Join(failed, ","))
		return
	}
	result.Record(model.StepSecrets, model.StepDone, req.Secret.Name)
}

func (x *UseCase) notify(ctx context.Context, req model.ProvisioningRequest, result *model.ProvisioningResult) {
	notifier := x.clients.Notifier()
	if notifier == nil {
		result.Record(model.StepNotify, model.StepSkipped, "no notifier")
		return
	}

	text := fmt.Sprintf("Repo %s created in %s.", req.Repo, req.Org)
	if err := notifier.Notify(ctx, text); err != nil {
		errutil.HandleError(ctx, "failed to send notification", err)
		result.Record(model.StepNotify, model.StepFailed, err.Error())
		return
	}
	result.Record(model.StepNotify, model.StepDone, "")
}

func (x *UseCase) writeAudit(ctx context.Context, req model.ProvisioningRequest, result *model.ProvisioningResult) {
	sinks := x.clients.AuditSinks()
	if len(sinks) == 0 {
		result.Record(model.StepAudit, model.StepSkipped, "no audit sinks")
		return
	}

	rec := &model.AuditRecord{
		Timestamp:  logging.CtxTime(ctx),
		RunID:      types.NewRunID(),
		Repo:       req.Repo,
		Org:        req.Org,
		Category:   req.Category,
		Region:     req.Region,
		CodeOwners: userNames(req.CodeOwners),
	}

	var failed []string
	for _, sink := range sinks {
		if err := sink.Write(ctx, rec); err != nil {
			errutil.HandleError(ctx, "failed to write audit record", err)
			failed = append(failed, sink.Name())
		}
	}

	if len(failed) > 0 {
		result.Record(model.StepAudit, model.StepFailed, strings.Join(failed, ","))
		return
	}
	result.Record(model.StepAudit, model.StepDone, string(rec.RunID))
}

func trimEach(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func userNames(users []types.UserName) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.String())
	}
	return out
}
