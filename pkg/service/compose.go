package service

import (
	"strings"

	"github.com/neighborbank/cli/pkg/api"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/media"
	"github.com/neighborbank/cli/pkg/output"
	"github.com/neighborbank/cli/pkg/prompter"
)

// Draft is the user input of a new question or community post.
type Draft struct {
	Title    string
	Category string
	Content  string
	Files    []string
	// Strict fails the draft if any file is rejected instead of skipping it.
	Strict bool
}

// fill prompts for the missing text fields when interactive.
func (d *Draft) fill(interactive bool) error {
	if !interactive {
		return nil
	}
	var err error
	if strings.TrimSpace(d.Category) == "" {
		if d.Category, err = prompter.PromptString("Category: "); err != nil {
			return err
		}
	}
	if strings.TrimSpace(d.Title) == "" {
		if d.Title, err = prompter.PromptString("Title: "); err != nil {
			return err
		}
	}
	if strings.TrimSpace(d.Content) == "" {
		if d.Content, err = prompter.PromptMultilineString("Content", 200); err != nil {
			return err
		}
	}
	return nil
}

func (d Draft) validate() error {
	if strings.TrimSpace(d.Category) == "" {
		return clierrors.ValidationError("category", "cannot be empty")
	}
	if strings.TrimSpace(d.Title) == "" {
		return clierrors.ValidationError("title", "cannot be empty")
	}
	if strings.TrimSpace(d.Content) == "" {
		return clierrors.ValidationError("content", "cannot be empty")
	}
	return nil
}

// attach admits the draft's files into manager. The caller closes the
// manager once the upload is done.
func attach(manager *media.Manager, paths []string, strict bool) ([]api.Attachment, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	candidates := make([]media.File, 0, len(paths))
	for _, path := range paths {
		f, err := media.OpenFile(path)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, f)
	}

	set, rejections, err := manager.Add(candidates)
	if err != nil {
		return nil, err
	}
	for _, r := range rejections {
		logger.Warn("Attachment rejected", "file", r.File.Name, "error", r.Err)
		if strict {
			return nil, r.Err
		}
		output.PrintWarning("Skipping %s", r.Err.Error())
	}

	files := set.Files()
	attachments := make([]api.Attachment, 0, len(files))
	for _, f := range files {
		attachments = append(attachments, f)
	}
	return attachments, nil
}
