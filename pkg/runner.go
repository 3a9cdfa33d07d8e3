package cargobump

import (
	"fmt"
	"io"
	"os"
)

// ConfirmQuestion is asked before any manifest is rewritten.
const ConfirmQuestion = "Are you sure you want to bump the version number? [y/N]"

// Runner drives the report and bump workflows against one workspace.
type Runner struct {
	Workspace Workspace
	Out       io.Writer // status lines, os.Stdout when nil
	Prompter  Prompter  // reads the confirmation from os.Stdin when nil
	Log       *Logger
	DryRun    bool
	Git       GitOptions
}

// Result is the outcome of a bump.
type Result struct {
	Changes   []Change
	Confirmed bool
	Written   []string
	Git       *GitResult
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) log() *Logger {
	if r.Log == nil {
		return NopLogger()
	}
	return r.Log
}

func (r *Runner) prompter() Prompter {
	if r.Prompter == nil {
		return LinePrompter{In: os.Stdin, Out: r.out()}
	}
	return r.Prompter
}

// Report prints the root version and the declared members. Nothing is modified.
func (r *Runner) Report() error {
	out := r.out()
	st := newStyles(out)

	version, err := r.Workspace.QueryVersion(RootMember)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Crate version: %s\n", version)

	members, err := r.Workspace.QueryMembers()
	if err != nil {
		return err
	}
	r.log().Debug().Int("count", len(members)).Msg("members discovered")
	fmt.Fprintf(out, "%s This crate has the following members:\n", st.infoPrefix())
	for _, m := range members {
		fmt.Fprintf(out, "  - %s\n", m)
	}
	return nil
}

// Bump bumps the root and every member by kind. All versions are read and
// computed before the confirmation; a declined confirmation is not an
// error and leaves every manifest untouched.
func (r *Runner) Bump(kind Kind) (Result, error) {
	var res Result
	out := r.out()
	st := newStyles(out)
	log := r.log().WithComponent("bump")

	changes, err := Plan(r.Workspace, kind)
	if err != nil {
		return res, err
	}
	res.Changes = changes

	paths := make([]string, 0, len(changes))
	for _, c := range changes {
		fmt.Fprintf(out, "%s Bumping version of %s: %s -> %s\n", st.infoPrefix(), c.Member, c.OldVersion, c.NewVersion)
		paths = append(paths, c.Path)

		mlog := log.WithMember(c.Member)
		switch {
		case c.Drift < 0:
			mlog.Warn().Str("version", c.OldVersion).Msg("member is behind the workspace root")
		case c.Drift > 0:
			mlog.Warn().Str("version", c.OldVersion).Msg("member is ahead of the workspace root")
		}
		mlog.Debug().Str("package", c.Name).Str("path", c.Path).Msg("planned")
	}

	if r.DryRun {
		fmt.Fprintf(out, "%s Dry run, no files were modified\n", st.infoPrefix())
		return res, nil
	}

	if r.Git.Commit {
		if err := CheckClean(r.Workspace.Dir(), paths); err != nil {
			return res, err
		}
	}

	ok, err := r.prompter().Confirm(st.warnPrefix() + " " + ConfirmQuestion)
	if err != nil {
		return res, err
	}
	if !ok {
		fmt.Fprintf(out, "%s Aborted\n", st.warnPrefix())
		return res, nil
	}
	res.Confirmed = true

	res.Written, err = Apply(r.Workspace, changes)
	for i := range res.Written {
		c := changes[i]
		log.WithMember(c.Member).Debug().Str("path", c.Path).Str("version", c.NewVersion).Msg("manifest written")
	}
	if err != nil {
		log.Error().Err(err).Strs("written", res.Written).Msg("bump stopped part way")
		return res, err
	}
	fmt.Fprintf(out, "%s Version number bumped\n", st.infoPrefix())

	if r.Git.Commit {
		version := changes[0].NewVersion
		gr, err := CommitRelease(r.Workspace.Dir(), paths, version, r.Git.Tag)
		if err != nil {
			return res, err
		}
		res.Git = &gr
		log.Info().Str("commit", gr.Commit).Str("tag", gr.Tag).Msg("release committed")
		fmt.Fprintf(out, "%s Committed %s\n", st.infoPrefix(), gr.Commit[:7])
		if gr.Tag != "" {
			fmt.Fprintf(out, "%s Tagged %s\n", st.infoPrefix(), gr.Tag)
		}
	}
	return res, nil
}
