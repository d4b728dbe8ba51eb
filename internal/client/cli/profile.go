package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/srstalent/talentconnect/internal/client/models"
	"github.com/srstalent/talentconnect/internal/client/profile"
	"github.com/srstalent/talentconnect/internal/filex"
)

// editableFields lists the metadata fields the profile editor offers, in
// prompt order.
var editableFields = []struct {
	key   string
	label string
}{
	{models.MetaFullName, "Full name"},
	{models.MetaContactNumber, "Contact number"},
	{models.MetaCollegeName, "College"},
	{models.MetaQualification, "Qualification"},
	{models.MetaStream, "Stream"},
	{models.MetaCity, "City"},
	{models.MetaGender, "Gender"},
	{models.MetaDOB, "Date of birth"},
}

// ShowProfile prints the signed-in identity's profile.
func (a *App) ShowProfile(context.Context) error {
	identity := a.session.Current()
	if identity == nil {
		fmt.Println("Sign in to view your profile")
		return profile.ErrNotSignedIn
	}

	fmt.Println("Email:", identity.Email)
	for _, f := range editableFields {
		if v := identity.Meta(f.key); v != "" {
			fmt.Printf("%s: %s\n", f.label, v)
		}
	}
	if v := identity.Meta(models.MetaProfilePicURL); v != "" {
		fmt.Println("Profile picture:", v)
	}
	if v := identity.Meta(models.MetaResumeURL); v != "" {
		fmt.Println("Resume:", v)
	}
	return nil
}

// EditProfile walks through the edit workflow: field edits, optional
// avatar and resume replacement, then an atomic save.
func (a *App) EditProfile(ctx context.Context) error {
	if err := a.editor.Edit(); err != nil {
		if errors.Is(err, profile.ErrNotSignedIn) {
			fmt.Println("Sign in to edit your profile")
		}
		return err
	}

	draft := a.editor.Draft()
	for _, f := range editableFields {
		prompt := fmt.Sprintf("%s [%s] (empty keeps current)", f.label, draft[f.key])
		value, err := GetSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}
		if err := a.editor.SetField(f.key, value); err != nil {
			return err
		}
	}

	if err := a.attachFile("New profile picture path (empty skips)", a.stageAvatar); err != nil {
		return err
	}
	if err := a.attachFile("New resume path (empty skips)", a.stageResume); err != nil {
		return err
	}

	save, err := GetYesNo(a.reader, "Save changes?", os.Stdout)
	if err != nil {
		return err
	}
	if !save {
		_ = a.editor.Cancel()
		fmt.Println("Changes discarded")
		return nil
	}

	if err := a.editor.Save(ctx); err != nil {
		fmt.Println("Save failed, nothing was changed:", err)
		return err
	}
	fmt.Println("Profile saved")
	return nil
}

func (a *App) stageAvatar(f *filex.File) error { return a.editor.AttachAvatar(f) }
func (a *App) stageResume(f *filex.File) error { return a.editor.AttachResume(f) }

// attachFile prompts for a local path and stages the file via attach.
// Validation errors are reported and re-prompted so a rejected file never
// silently ends the edit.
func (a *App) attachFile(prompt string, attach func(*filex.File) error) error {
	for {
		path, err := GetSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
		f, err := filex.Read(path)
		if err != nil {
			fmt.Println("Could not read file:", err)
			continue
		}
		if err := attach(f); err != nil {
			fmt.Println("File rejected:", err)
			continue
		}
		fmt.Println("Staged", f.Name, fmt.Sprintf("(%s, %d bytes)", f.ContentType, f.Size))
		return nil
	}
}
