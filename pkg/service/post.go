package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/neighborbank/cli/pkg/api"
	"github.com/neighborbank/cli/pkg/content"
	"github.com/neighborbank/cli/pkg/engagement"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/formatter"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/media"
	"github.com/neighborbank/cli/pkg/output"
	"github.com/neighborbank/cli/pkg/prompter"
)

// PostService handles a single community post.
type PostService struct {
	base
}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

func (s *PostService) detail(ctx context.Context, e *env, id int64) (*api.CommunityDetail, error) {
	detail, err := e.api.GetCommunityDetail(ctx, id)
	if err != nil {
		return nil, api.Classify(err, "Post", strconv.FormatInt(id, 10))
	}
	return detail, nil
}

// Show prints a community post with its comments.
func (s *PostService) Show(ctx context.Context, id int64) error {
	e, err := s.environment()
	if err != nil {
		return err
	}

	p, err := s.detail(ctx, e, id)
	if err != nil {
		return err
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(p)
	}

	target := engagement.Target{Kind: content.KindCommunity, ID: p.PostID}
	ctrl := engagement.NewController(e.api, e.session)
	defer ctrl.Close()
	if err := ctrl.Load(ctx, target, p.LikeCount); err != nil {
		logger.Warn("Could not load scrap state", "post_id", p.PostID, "error", err)
	}
	like := ctrl.State(engagement.Key{Target: target, Engagement: engagement.Like})

	fields := []output.Field{
		{Key: "ID", Value: p.PostID},
		{Key: "Category", Value: p.CategoryName},
		{Key: "Location", Value: p.Location},
		{Key: "Author", Value: p.Nickname},
		{Key: "Posted", Value: formatter.RelativeTime(p.CreatedAt.Time, e.now())},
		{Key: "Views", Value: p.ViewCount},
		{Key: "Helpful", Value: like.Count},
		{Key: "Scraps", Value: p.ScrapCount},
	}
	if e.session.IsCustomer() {
		scrap := ctrl.State(engagement.Key{Target: target, Engagement: engagement.Scrap})
		fields = append(fields, output.Field{Key: "Scrapped", Value: yesNo(scrap.Active)})
	}
	if len(p.FilePaths) > 0 {
		fields = append(fields, output.Field{Key: "Files", Value: strings.Join(p.FilePaths, ", ")})
	}
	fields = append(fields, output.Field{Key: "Content", Value: "\n" + p.Content})

	if err := output.PrintRecord(p.Title, fields, p); err != nil {
		return err
	}
	printComments(p.CommentList, e)
	return nil
}

// Like toggles the "helpful" mark of a post, starting from its current count.
func (s *PostService) Like(ctx context.Context, id int64) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.Require("like posts"); err != nil {
		return err
	}

	p, err := s.detail(ctx, e, id)
	if err != nil {
		return err
	}
	return toggle(ctx, e, engagement.Target{Kind: content.KindCommunity, ID: id}, engagement.Like, p.LikeCount)
}

// Scrap toggles the signed-in customer's scrap of a post.
func (s *PostService) Scrap(ctx context.Context, id int64) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	return toggle(ctx, e, engagement.Target{Kind: content.KindCommunity, ID: id}, engagement.Scrap, 0)
}

// Delete removes a post the signed-in customer wrote.
func (s *PostService) Delete(ctx context.Context, id int64, force bool) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.Require("delete posts"); err != nil {
		return err
	}

	p, err := s.detail(ctx, e, id)
	if err != nil {
		return err
	}
	if !e.session.Owns(p.CustomerID) {
		return clierrors.ForbiddenError("You can only delete your own posts")
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Delete post \"" + p.Title + "\"?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := e.api.DeleteCommunityPost(ctx, id); err != nil {
		return api.Classify(err, "Post", strconv.FormatInt(id, 10))
	}
	output.PrintSuccess("✓ Post #%d deleted", id)
	return nil
}

// New registers a community post in the session's district.
func (s *PostService) New(ctx context.Context, draft Draft, interactive bool) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.RequireCustomer("write posts"); err != nil {
		return err
	}

	if err := draft.fill(interactive); err != nil {
		return err
	}
	if err := draft.validate(); err != nil {
		return err
	}

	manager := media.NewManager(nil)
	defer manager.Close()

	files, err := attach(manager, draft.Files, draft.Strict)
	if err != nil {
		return err
	}

	req := api.PostRegistration{
		Title:        strings.TrimSpace(draft.Title),
		CustomerID:   e.session.UserID,
		CategoryName: strings.TrimSpace(draft.Category),
		Location:     e.session.Location,
		Content:      draft.Content,
	}
	if err := e.api.RegisterCommunityPost(ctx, req, files); err != nil {
		return api.Classify(err, "Post", "new")
	}

	output.PrintSuccess("✓ Post registered in %s with %d attachment(s)", e.session.Location, len(files))
	return nil
}
