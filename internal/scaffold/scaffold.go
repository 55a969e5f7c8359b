package scaffold

import (
	"io"
	"os"

	"github.com/cplate-dev/cplate/internal/prompt"
	"github.com/cplate-dev/cplate/internal/report"
)

const (
	filePerm = 0644
	dirPerm  = 0755

	createQuestion = "Create one? [Y/N]:"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) prompt.Decision
}

// Reporter receives the human-readable status lines of a run. Failure lines
// belong on the error stream; the rest on standard output.
type Reporter interface {
	Notice(format string, args ...any)
	Success(format string, args ...any)
	Info(format string, args ...any)
	Failure(format string, args ...any)
}

// Scaffolder ensures the project artifacts exist in a single target
// directory. It holds no state besides its configuration, so every ensure
// operation can be called on its own and repeated safely.
type Scaffolder struct {
	dir       string
	confirmer Confirmer
	reporter  Reporter
	assumeYes bool

	// create opens a new file for writing. It must fail if the file exists.
	create func(path string) (io.WriteCloser, error)
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithConfirmer sets the prompt used before creating a file artifact.
func WithConfirmer(c Confirmer) Option {
	return func(s *Scaffolder) { s.confirmer = c }
}

// WithReporter sets where status lines go.
func WithReporter(r Reporter) Option {
	return func(s *Scaffolder) { s.reporter = r }
}

// WithAssumeYes skips the confirmation prompt and creates every missing
// file. The missing-artifact notice is still reported.
func WithAssumeYes(yes bool) Option {
	return func(s *Scaffolder) { s.assumeYes = yes }
}

// New returns a Scaffolder for dir. dir must already exist; it is never
// created. Without options the Scaffolder prompts on os.Stdin/os.Stdout and
// reports to os.Stdout/os.Stderr.
func New(dir string, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		dir:    dir,
		create: createExclusive,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.confirmer == nil {
		s.confirmer = prompt.New(os.Stdin, os.Stdout)
	}
	if s.reporter == nil {
		s.reporter = report.New(os.Stdout, os.Stderr, report.ColorAuto)
	}
	return s
}

// Run ensures every artifact in order and returns one Result per artifact.
// A failure on one artifact does not stop the others.
func (s *Scaffolder) Run() []Result {
	return []Result{
		s.EnsureFormatterConfig(),
		s.EnsureEntrySource(),
		s.EnsureBuildManifest(),
		s.EnsureBuildDirectory(),
	}
}

// EnsureFormatterConfig creates .clang-format after confirmation if absent.
func (s *Scaffolder) EnsureFormatterConfig() Result {
	return s.ensureFile(FormatterConfig)
}

// EnsureEntrySource creates main.cpp after confirmation if absent.
func (s *Scaffolder) EnsureEntrySource() Result {
	return s.ensureFile(EntrySource)
}

// EnsureBuildManifest creates CMakeLists.txt after confirmation if absent.
func (s *Scaffolder) EnsureBuildManifest() Result {
	return s.ensureFile(BuildManifest)
}

// EnsureBuildDirectory creates the build directory if absent. It never
// prompts and creates exactly one directory level.
func (s *Scaffolder) EnsureBuildDirectory() Result {
	path := BuildDirectory.Path(s.dir)
	res := Result{Artifact: BuildDirectory, Path: path}

	present, err := Present(s.dir, BuildDirectory)
	if err != nil {
		return s.fail(res, err)
	}
	if present {
		s.reporter.Info("Build directory already exists: %s", path)
		res.Outcome = AlreadyPresent
		return res
	}

	if err := os.Mkdir(path, dirPerm); err != nil {
		return s.fail(res, err)
	}

	s.reporter.Success("Build directory created: %s", path)
	res.Outcome = Created
	return res
}

func (s *Scaffolder) ensureFile(a Artifact) Result {
	path := a.Path(s.dir)
	res := Result{Artifact: a, Path: path}

	// Present entries are skipped silently.
	present, err := Present(s.dir, a)
	if err != nil {
		return s.fail(res, err)
	}
	if present {
		res.Outcome = AlreadyPresent
		return res
	}

	s.reporter.Notice("%s does not exist in %s", a, s.dir)
	if !s.confirmed() {
		res.Outcome = Declined
		return res
	}

	if err := s.writeFile(path, a.Template()); err != nil {
		return s.fail(res, err)
	}

	s.reporter.Success("Creating %s success.", a)
	res.Outcome = Created
	return res
}

func (s *Scaffolder) confirmed() bool {
	if s.assumeYes {
		return true
	}
	return s.confirmer.Confirm(createQuestion) == prompt.Accept
}

// writeFile writes content to a new file at path. If anything fails after
// the file was opened, the file is removed again.
func (s *Scaffolder) writeFile(path, content string) (err error) {
	f, err := s.create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	_, err = io.WriteString(f, content)
	return err
}

func (s *Scaffolder) fail(res Result, err error) Result {
	if res.Artifact.IsDir() {
		s.reporter.Failure("Failed to create build directory: %v", err)
	} else {
		s.reporter.Failure("Failed to create %s file: %v", res.Artifact, err)
	}
	res.Outcome = Failed
	res.Err = err
	return res
}

// createExclusive refuses to open an existing file, so an entry that
// appears between the presence check and the open is never truncated.
func createExclusive(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
}
