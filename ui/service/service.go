package service

import (
	"context"
	"strings"

	"github.com/casual-erp/casual-web/ccli"
)

// CLI runs casual-cli commands. *ccli.Invoker satisfies it.
type CLI interface {
	Invoke(ctx context.Context, program ccli.Program, command ccli.Command, args ccli.Args, mode ccli.Mode) (*ccli.Result, error)
	Start(ctx context.Context, program ccli.Program, command ccli.Command, args ccli.Args, mode ccli.Mode, done func(*ccli.Result, error))
}

// Service provides admin UI operations.
type Service struct {
	cli CLI
}

// New creates a new Service on top of the given CLI.
func New(cli CLI) *Service {
	return &Service{cli: cli}
}

// html runs a listing command in html mode. An absent result yields "".
func (s *Service) html(ctx context.Context, program ccli.Program, command ccli.Command, args ccli.Args) (string, error) {
	res, err := s.cli.Invoke(ctx, program, command, args, ccli.ModeHTML)
	if err != nil || res == nil {
		return "", err
	}
	return res.Text, nil
}

// record fetches one JSON object.
func (s *Service) record(ctx context.Context, program ccli.Program, command ccli.Command, id int64) (Record, error) {
	res, err := s.cli.Invoke(ctx, program, command, ccli.Args{ccli.ID(id)}, ccli.ModeJSON)
	if err != nil {
		return Record{}, err
	}
	if res == nil || !res.JSON.IsObject() {
		return Record{}, ErrNotFound
	}
	return Record{raw: res.JSON}, nil
}

// records fetches a JSON array of objects. An absent result yields nil.
func (s *Service) records(ctx context.Context, program ccli.Program, command ccli.Command, args ccli.Args) ([]Record, error) {
	res, err := s.cli.Invoke(ctx, program, command, args, ccli.ModeJSON)
	if err != nil || res == nil || !res.JSON.IsArray() {
		return nil, err
	}
	items := res.JSON.Array()
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if item.IsObject() {
			out = append(out, Record{raw: item})
		}
	}
	return out, nil
}

// value runs a command in value mode and returns the trimmed output.
func (s *Service) value(ctx context.Context, program ccli.Program, command ccli.Command, args ccli.Args) (string, error) {
	res, err := s.cli.Invoke(ctx, program, command, args, ccli.ModeValue)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", nil
	}
	if res.Unavailable() {
		return "", ErrUnavailable
	}
	return strings.TrimSpace(res.Text), nil
}

// remove runs a remove command and reports whether the CLI confirmed it.
func (s *Service) remove(ctx context.Context, program ccli.Program, command ccli.Command, id int64) (bool, error) {
	out, err := s.value(ctx, program, command, ccli.Args{ccli.ID(id)})
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// generate fires a document generation command in the background. delivered
// receives the path the CLI reports, if any.
func (s *Service) generate(ctx context.Context, command ccli.Command, args ccli.Args, delivered func(path string)) {
	s.cli.Start(ctx, ccli.ProgramProject, command, args, ccli.ModeValue, func(res *ccli.Result, err error) {
		if err != nil || res == nil || res.Unavailable() || delivered == nil {
			return
		}
		if p := strings.Trim(strings.TrimSpace(res.Text), `"`); p != "" {
			delivered(p)
		}
	})
}
