package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropnote/dropnote/internal/catalog"
)

// fakeIndex is an in-memory AppIndex: bundle and executable paths keyed by
// bundle identifier.
type fakeIndex struct {
	bundles map[string]string
	execs   map[string]string
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{bundles: map[string]string{}, execs: map[string]string{}}
}

func (f *fakeIndex) install(d catalog.Descriptor, bundle, exe string) {
	if bundle != "" {
		f.bundles[d.ID] = bundle
	}
	if exe != "" {
		f.execs[d.ID] = exe
	}
}

func (f *fakeIndex) BundlePath(d catalog.Descriptor) (string, bool) {
	p, ok := f.bundles[d.ID]
	return p, ok
}

func (f *fakeIndex) ExecutablePath(d catalog.Descriptor) (string, error) {
	if p, ok := f.execs[d.ID]; ok {
		return p, nil
	}
	return "", fmt.Errorf("no executable for %s", d.ID)
}

type fakeRunner struct {
	scripts []string
	err     error
}

func (f *fakeRunner) Run(ctx context.Context, script string) error {
	f.scripts = append(f.scripts, script)
	return f.err
}

type spawnCall struct {
	path string
	args []string
}

type fakeSpawner struct {
	calls []spawnCall
	err   error
}

func (f *fakeSpawner) Spawn(path string, args []string) error {
	f.calls = append(f.calls, spawnCall{path: path, args: args})
	return f.err
}

type fakeOpener struct {
	calls int
	err   error
	block bool // never signal completion
}

func (f *fakeOpener) Open(ctx context.Context, bundleID string) error {
	f.calls++
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

type fakeSender struct {
	texts []string
	errs  []error // consumed per call; nil entry means success
}

func (f *fakeSender) Type(ctx context.Context, text string) error {
	f.texts = append(f.texts, text)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	return nil
}

// spyStrategy records attempts and returns a canned result.
type spyStrategy struct {
	calls int
	out   Outcome
	err   error
}

func (s *spyStrategy) Attempt(ctx context.Context, d catalog.Descriptor, dir string) (Outcome, error) {
	s.calls++
	return s.out, s.err
}

var errBoom = errors.New("boom")

func mustDescriptor(id string) catalog.Descriptor {
	d, ok := catalog.Lookup(id)
	if !ok {
		panic("unknown test terminal " + id)
	}
	return d
}
