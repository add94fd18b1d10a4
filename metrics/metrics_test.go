package metrics

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/tinywasm/chart/errs"
)

func TestBasicMeasure(t *testing.T) {
	m := Basic()
	if !m.Ready() {
		t.Fatal("basic measurer must always be ready")
	}

	s := m.Measure("abc")
	if got, want := s.Width, 21.0; got != want {
		t.Errorf("invalid width: got=%v, want=%v", got, want)
	}
	if got, want := s.Height, 13.0; got != want {
		t.Errorf("invalid height: got=%v, want=%v", got, want)
	}
}

func TestMonospace(t *testing.T) {
	m := Monospace{CharWidth: 8, LineHeight: 12}

	if got, want := m.Measure("Feb").Width, 24.0; got != want {
		t.Errorf("invalid width: got=%v, want=%v", got, want)
	}
	if got, want := MaxWidth(m, []string{"a", "abcd", "ab"}), 32.0; got != want {
		t.Errorf("invalid max width: got=%v, want=%v", got, want)
	}
	if got, want := MaxHeight(m, nil), 0.0; got != want {
		t.Errorf("invalid max height: got=%v, want=%v", got, want)
	}
	if (Monospace{}).Ready() {
		t.Errorf("zero monospace must not be ready")
	}
}

func TestFontNotReadyUntilLoaded(t *testing.T) {
	fm := NewFontManager(func(path string) ([]byte, error) {
		return []byte("not a font"), nil
	}, nil)
	fm.Register("Roboto", "fonts/roboto.ttf")

	f := fm.Font("Roboto", 12)
	if f.Ready() {
		t.Fatal("font must not be ready before Load")
	}
	if got := f.Measure("Jan"); got != (Size{}) {
		t.Errorf("unready font measured %v", got)
	}

	err := fm.Load()
	if !errors.Is(err, errs.ErrFontFile) {
		t.Errorf("expected ErrFontFile, got %v", err)
	}
	if f.Ready() {
		t.Errorf("font must stay unready after a failed load")
	}
}

func TestFontReadError(t *testing.T) {
	fm := NewFontManager(func(path string) ([]byte, error) {
		return nil, errs.New("missing", path)
	}, nil)
	fm.Register("Roboto", "fonts/roboto.ttf")

	if err := fm.Load(); !errors.Is(err, errs.ErrFontFile) {
		t.Errorf("expected ErrFontFile, got %v", err)
	}
}

func TestLoadAsyncBindsPendingFonts(t *testing.T) {
	fm := NewFontManager(func(path string) ([]byte, error) {
		return goregular.TTF, nil
	}, nil)
	fm.Register("Go", "fonts/go.ttf")

	f := fm.Font("Go", 12)
	if f.Ready() {
		t.Fatal("font must not be ready before loading")
	}

	done := make(chan error, 1)
	fm.LoadAsync(func(err error) { done <- err })
	if err := <-done; err != nil {
		t.Fatalf("LoadAsync: %v", err)
	}

	if !f.Ready() {
		t.Fatal("font must be ready after loading")
	}
	if got := f.Measure("Jan"); got.Width <= 0 || got.Height <= 0 {
		t.Errorf("invalid size: got=%v", got)
	}

	late := fm.Font("Go", 18)
	if !late.Ready() {
		t.Error("handles created after loading must be ready at once")
	}
	if late.Measure("Jan").Width <= f.Measure("Jan").Width {
		t.Errorf("larger size must measure wider: got=%v, small=%v", late.Measure("Jan").Width, f.Measure("Jan").Width)
	}
}

func TestLoadAsyncReportsErrors(t *testing.T) {
	fm := NewFontManager(func(path string) ([]byte, error) {
		return nil, errs.New("missing", path)
	}, nil)
	fm.Register("Go", "fonts/go.ttf")

	done := make(chan error, 1)
	fm.LoadAsync(func(err error) { done <- err })
	if err := <-done; !errors.Is(err, errs.ErrFontFile) {
		t.Errorf("expected ErrFontFile, got %v", err)
	}
}
