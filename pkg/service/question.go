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

// QuestionService handles a single Q&A question.
type QuestionService struct {
	base
}

// NewQuestionService creates a new question service
func NewQuestionService() *QuestionService {
	return &QuestionService{}
}

func (s *QuestionService) detail(ctx context.Context, e *env, id int64) (*api.QuestionDetail, error) {
	detail, err := e.api.GetQuestionDetail(ctx, id)
	if err != nil {
		return nil, api.Classify(err, "Question", strconv.FormatInt(id, 10))
	}
	return detail, nil
}

// Show prints a question with its answer and comments.
func (s *QuestionService) Show(ctx context.Context, id int64) error {
	e, err := s.environment()
	if err != nil {
		return err
	}

	q, err := s.detail(ctx, e, id)
	if err != nil {
		return err
	}

	category := q.CategoryName
	if category == "" {
		category = string(q.CategoryID)
	}
	fields := []output.Field{
		{Key: "ID", Value: q.QuestionID},
		{Key: "Category", Value: category},
		{Key: "Title", Value: q.Title},
		{Key: "Author", Value: q.Nickname},
		{Key: "Posted", Value: formatter.RelativeTime(q.CreatedAt.Time, e.now())},
		{Key: "Views", Value: q.ViewCount},
		{Key: "Helpful", Value: q.LikeCount},
	}

	if e.session.IsCustomer() {
		ctrl := engagement.NewController(e.api, e.session)
		defer ctrl.Close()
		target := engagement.Target{Kind: content.KindQuestion, ID: q.QuestionID}
		if err := ctrl.Load(ctx, target, q.LikeCount); err != nil {
			logger.Warn("Could not load scrap state", "question_id", q.QuestionID, "error", err)
		} else {
			fields = append(fields, output.Field{Key: "Scrapped", Value: yesNo(ctrl.State(engagement.Key{Target: target, Engagement: engagement.Scrap}).Active)})
		}
	}
	if len(q.FilePaths) > 0 {
		fields = append(fields, output.Field{Key: "Files", Value: strings.Join(q.FilePaths, ", ")})
	}
	fields = append(fields, output.Field{Key: "Content", Value: "\n" + q.Content})

	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(q)
	}
	if err := output.PrintRecord(q.Title, fields, q); err != nil {
		return err
	}

	if q.Answer != nil {
		a := q.Answer
		output.PrintRecord("Answer", []output.Field{
			{Key: "Banker", Value: strings.TrimSpace(a.BankerName + " " + a.BranchName)},
			{Key: "Answered", Value: formatter.RelativeTime(a.CreatedAt.Time, e.now())},
			{Key: "Content", Value: "\n" + a.Content},
		}, a)
	} else {
		output.PrintInfo(content.PendingAnswer)
	}

	printComments(q.CommentList, e)
	return nil
}

// Answer posts the signed-in banker's answer.
func (s *QuestionService) Answer(ctx context.Context, id int64, text string) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.RequireBanker("answer questions"); err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" && prompter.IsInteractive() {
		if text, err = prompter.PromptMultilineString("Answer", 200); err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) == "" {
		return clierrors.ValidationError("answer", "cannot be empty")
	}

	q, err := s.detail(ctx, e, id)
	if err != nil {
		return err
	}
	if q.Answer != nil {
		return clierrors.ConflictError("This question has already been answered")
	}

	if err := e.api.PostAnswer(ctx, id, api.AnswerRequest{BankerID: e.session.UserID, Content: text}); err != nil {
		return api.Classify(err, "Question", strconv.FormatInt(id, 10))
	}

	output.PrintSuccess("✓ Answer posted to question #%d", id)
	return nil
}

// Delete removes a question the signed-in customer asked.
func (s *QuestionService) Delete(ctx context.Context, id int64, force bool) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.Require("delete questions"); err != nil {
		return err
	}

	q, err := s.detail(ctx, e, id)
	if err != nil {
		return err
	}
	if !e.session.Owns(q.CustomerID) {
		return clierrors.ForbiddenError("You can only delete your own questions")
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Delete question \"" + q.Title + "\"?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := e.api.DeleteQuestion(ctx, id); err != nil {
		return api.Classify(err, "Question", strconv.FormatInt(id, 10))
	}
	output.PrintSuccess("✓ Question #%d deleted", id)
	return nil
}

// Edit changes the fields of draft that are set, keeping the rest.
func (s *QuestionService) Edit(ctx context.Context, id int64, draft Draft) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.Require("edit questions"); err != nil {
		return err
	}

	q, err := s.detail(ctx, e, id)
	if err != nil {
		return err
	}
	if !e.session.Owns(q.CustomerID) {
		return clierrors.ForbiddenError("You can only edit your own questions")
	}

	if strings.TrimSpace(draft.Title+draft.Content+draft.Category) == "" {
		output.PrintWarning("Nothing to change")
		return nil
	}

	req := api.QuestionRegistration{
		Title:        firstNonEmpty(draft.Title, q.Title),
		Content:      firstNonEmpty(draft.Content, q.Content),
		CustomerID:   e.session.UserID,
		CategoryName: firstNonEmpty(draft.Category, q.CategoryName, string(q.CategoryID)),
		Location:     e.session.Location,
	}
	if err := e.api.UpdateQuestion(ctx, id, req); err != nil {
		return api.Classify(err, "Question", strconv.FormatInt(id, 10))
	}
	output.PrintSuccess("✓ Question #%d updated", id)
	return nil
}

// Scrap toggles the signed-in customer's scrap of a question.
func (s *QuestionService) Scrap(ctx context.Context, id int64) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	return toggle(ctx, e, engagement.Target{Kind: content.KindQuestion, ID: id}, engagement.Scrap, 0)
}

// New registers a question with optional image attachments.
func (s *QuestionService) New(ctx context.Context, draft Draft, interactive bool) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.RequireCustomer("ask questions"); err != nil {
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

	req := api.QuestionRegistration{
		Title:        strings.TrimSpace(draft.Title),
		Content:      draft.Content,
		CustomerID:   e.session.UserID,
		CategoryName: strings.TrimSpace(draft.Category),
		Location:     e.session.Location,
	}
	if err := e.api.RegisterQuestion(ctx, req, files); err != nil {
		return api.Classify(err, "Question", "new")
	}

	output.PrintSuccess("✓ Question registered with %d attachment(s)", len(files))
	return nil
}

// toggle runs one engagement toggle and prints the settled state.
func toggle(ctx context.Context, e *env, target engagement.Target, kind engagement.Engagement, likeCount int) error {
	ctrl := engagement.NewController(e.api, e.session, engagement.WithObserver(func(key engagement.Key, phase engagement.Phase, st engagement.State) {
		logger.Debug("Engagement transition", "key", key.String(), "phase", phase, "active", st.Active, "count", st.Count)
	}))
	defer ctrl.Close()

	key := engagement.Key{Target: target, Engagement: kind}
	if err := ctrl.Load(ctx, target, likeCount); err != nil {
		logger.Warn("Could not load engagement state before toggling", "key", key.String(), "error", err)
	}

	st, err := ctrl.Toggle(ctx, key)
	if err != nil {
		return err
	}

	switch {
	case kind == engagement.Like && st.Active:
		output.PrintSuccess("✓ Marked helpful (%d)", st.Count)
	case kind == engagement.Like:
		output.PrintSuccess("✓ Helpful removed (%d)", st.Count)
	case st.Active:
		output.PrintSuccess("✓ Scrapped %s #%d", target.Kind, target.ID)
	default:
		output.PrintSuccess("✓ Scrap removed from %s #%d", target.Kind, target.ID)
	}
	return nil
}

func printComments(comments []api.Comment, e *env) {
	if len(comments) == 0 {
		return
	}
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{c.Nickname, formatter.Truncate(c.Content, 60), formatter.RelativeTime(c.CreatedAt.Time, e.now())})
	}
	output.PrintRows("Comments ("+strconv.Itoa(len(comments))+")", []string{"AUTHOR", "COMMENT", "WHEN"}, rows, comments)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
