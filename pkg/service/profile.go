package service

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/neighborbank/cli/pkg/api"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/media"
	"github.com/neighborbank/cli/pkg/output"
	"github.com/neighborbank/cli/pkg/prompter"
)

// MinPasswordLength is the shortest new password the server accepts.
const MinPasswordLength = 8

// ProfileEdit holds the account fields to change. Empty fields keep their
// current value; the password is always required.
type ProfileEdit struct {
	Password  string
	Nickname  string
	BirthDate string
	Gender    string
	Location  string
	Phone     string
	// Branch is only for bankers
	Branch string
}

func (p ProfileEdit) customerFieldsSet() bool {
	return strings.TrimSpace(p.Nickname+p.BirthDate+p.Gender+p.Location+p.Phone) != ""
}

// CardEdit holds the banker profile card fields to change.
type CardEdit struct {
	Name      string
	Interests []string
	Intro     string
	Photo     string
}

func (c CardEdit) empty() bool {
	return strings.TrimSpace(c.Name+c.Intro+c.Photo) == "" && len(c.Interests) == 0
}

// Profile prints the signed-in user's account information.
func (s *MyPageService) Profile(ctx context.Context) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.Require("view your profile"); err != nil {
		return err
	}
	id := strconv.FormatInt(e.session.UserID, 10)

	if e.session.IsBanker() {
		info, err := e.api.GetBankerInfo(ctx, e.session.UserID)
		if err != nil {
			return api.Classify(err, "Profile", id)
		}
		return output.PrintRecord("Profile", []output.Field{
			{Key: "Name", Value: info.BankerName},
			{Key: "Email", Value: info.BankerEmail},
			{Key: "Branch", Value: info.BranchName},
		}, info)
	}

	info, err := e.api.GetCustomerInfo(ctx, e.session.UserID)
	if err != nil {
		return api.Classify(err, "Profile", id)
	}
	return output.PrintRecord("Profile", []output.Field{
		{Key: "Name", Value: info.CustomerName},
		{Key: "Email", Value: info.CustomerEmail},
		{Key: "Nickname", Value: info.Nickname},
		{Key: "Phone", Value: info.Phone},
		{Key: "Birth date", Value: info.BirthDate},
		{Key: "Gender", Value: info.Gender},
		{Key: "Location", Value: info.Location},
	}, info)
}

// EditProfile changes the signed-in user's account information.
func (s *MyPageService) EditProfile(ctx context.Context, edit ProfileEdit, interactive bool) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.Require("edit your profile"); err != nil {
		return err
	}

	if e.session.IsBanker() && edit.customerFieldsSet() {
		return clierrors.ValidationError("profile", "bankers can only change their branch and password")
	}
	if !e.session.IsBanker() && strings.TrimSpace(edit.Branch) != "" {
		return clierrors.ValidationError("branch", "only bankers have a branch")
	}
	if edit.Gender = strings.ToUpper(strings.TrimSpace(edit.Gender)); edit.Gender != "" && edit.Gender != "M" && edit.Gender != "F" {
		return clierrors.ValidationError("gender", "must be M or F")
	}
	if edit.BirthDate = strings.TrimSpace(edit.BirthDate); edit.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", edit.BirthDate); err != nil {
			return clierrors.ValidationError("birth-date", "must look like 1990-01-31")
		}
	}

	password, err := newPassword(edit.Password, interactive)
	if err != nil {
		return err
	}
	id := strconv.FormatInt(e.session.UserID, 10)

	if e.session.IsBanker() {
		info, err := e.api.GetBankerInfo(ctx, e.session.UserID)
		if err != nil {
			return api.Classify(err, "Profile", id)
		}
		req := api.BankerInfoUpdate{
			Password:   password,
			BranchName: firstNonEmpty(edit.Branch, info.BranchName),
		}
		if err := e.api.UpdateBankerInfo(ctx, e.session.UserID, req); err != nil {
			return api.Classify(err, "Profile", id)
		}
		output.PrintSuccess("✓ Profile updated")
		return nil
	}

	info, err := e.api.GetCustomerInfo(ctx, e.session.UserID)
	if err != nil {
		return api.Classify(err, "Profile", id)
	}
	req := api.CustomerInfoUpdate{
		Password:  password,
		Nickname:  firstNonEmpty(edit.Nickname, info.Nickname),
		BirthDate: firstNonEmpty(edit.BirthDate, info.BirthDate),
		Gender:    firstNonEmpty(edit.Gender, info.Gender),
		Location:  firstNonEmpty(edit.Location, info.Location),
		Phone:     firstNonEmpty(edit.Phone, info.Phone),
	}
	if err := e.api.UpdateCustomerInfo(ctx, e.session.UserID, req); err != nil {
		return api.Classify(err, "Profile", id)
	}

	output.PrintSuccess("✓ Profile updated")
	if req.Location != "" && req.Location != e.session.Location {
		output.PrintInfo("Feeds still follow %s until you run: neighborbank auth use --location %s", e.session.Location, req.Location)
	}
	return nil
}

// EditCard changes the signed-in banker's public profile card. Fields left
// empty keep the value listed for the banker's district.
func (s *MyPageService) EditCard(ctx context.Context, edit CardEdit) error {
	e, err := s.environment()
	if err != nil {
		return err
	}
	if err := e.session.RequireBanker("edit a profile card"); err != nil {
		return err
	}
	if edit.empty() {
		output.PrintWarning("Nothing to change")
		return nil
	}

	current := s.currentCard(ctx, e)
	card := api.BankerCard{
		BankerID:        e.session.UserID,
		Name:            firstNonEmpty(edit.Name, current.Name),
		Specializations: cleanInterests(edit.Interests),
		Content:         firstNonEmpty(edit.Intro, current.Desc),
	}
	if len(card.Specializations) == 0 {
		card.Specializations = cleanInterests(strings.Split(current.Interests, ","))
	}
	if card.Name == "" {
		info, err := e.api.GetBankerInfo(ctx, e.session.UserID)
		if err != nil {
			return api.Classify(err, "Profile", strconv.FormatInt(e.session.UserID, 10))
		}
		card.Name = info.BankerName
	}

	var photo api.Attachment
	if strings.TrimSpace(edit.Photo) != "" {
		manager := media.NewManager(nil)
		defer manager.Close()

		files, err := attach(manager, []string{edit.Photo}, true)
		if err != nil {
			return err
		}
		photo = files[0]
	}

	if err := e.api.UpdateBankerCard(ctx, card, photo); err != nil {
		return api.Classify(err, "Profile", strconv.FormatInt(e.session.UserID, 10))
	}
	output.PrintSuccess("✓ Profile card updated")
	return nil
}

// currentCard looks the banker up in their district's banker list.
func (s *MyPageService) currentCard(ctx context.Context, e *env) api.BankerProfile {
	bankers, err := e.api.GetBankerProfiles(ctx, e.session.Location)
	if err != nil {
		logger.Warn("Could not load current profile card", "location", e.session.Location, "error", err)
		return api.BankerProfile{}
	}
	for _, b := range bankers {
		if b.BankerID == e.session.UserID {
			return b
		}
	}
	return api.BankerProfile{}
}

func newPassword(password string, interactive bool) (string, error) {
	if password == "" && interactive {
		var err error
		if password, err = prompter.PromptPassword("New password: "); err != nil {
			return "", err
		}
		confirm, err := prompter.PromptPassword("Confirm password: ")
		if err != nil {
			return "", err
		}
		if confirm != password {
			return "", clierrors.ValidationError("password", "passwords do not match")
		}
	}
	if password == "" {
		return "", clierrors.ValidationError("password", "a new password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", clierrors.ValidationError("password", "must be at least "+strconv.Itoa(MinPasswordLength)+" characters")
	}
	return password, nil
}

func cleanInterests(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
