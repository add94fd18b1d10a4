package metrics

import (
	"sync"

	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/fmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DPI used when rasterising font sizes; 72 makes one point one pixel.
const DPI = 72

// FontManager loads TrueType fonts and hands out measurers for them.
// Measurers returned before Load completes report Ready() == false.
type FontManager struct {
	mu      sync.Mutex
	paths   map[string]string // family -> path or URL
	fonts   map[string]*opentype.Font
	handles []*Font
	read    env.ReadFileFunc
	log     env.Logger
}

// NewFontManager creates a manager reading files with read (env.ReadFile
// when nil). logger may be nil.
func NewFontManager(read env.ReadFileFunc, logger env.Logger) *FontManager {
	if read == nil {
		read = env.ReadFile
	}
	if logger == nil {
		logger = env.Discard
	}
	return &FontManager{
		paths: make(map[string]string),
		fonts: make(map[string]*opentype.Font),
		read:  read,
		log:   logger,
	}
}

// Register adds a font family to be loaded from path.
func (fm *FontManager) Register(family, path string) *FontManager {
	fm.mu.Lock()
	fm.paths[family] = path
	fm.mu.Unlock()
	return fm
}

// Load reads and parses every registered font, then binds the pending
// handles. It stops at the first failing family. Files are read without
// holding the lock, so handles can be measured while Load runs.
func (fm *FontManager) Load() error {
	fm.mu.Lock()
	pending := make(map[string]string)
	for family, path := range fm.paths {
		if _, ok := fm.fonts[family]; !ok {
			pending[family] = path
		}
	}
	fm.mu.Unlock()

	for family, path := range pending {
		data, err := fm.read(path)
		if err != nil {
			return errs.New(errs.ErrFontFile, family, rune(':'), err)
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return errs.New(errs.ErrFontFile, family, rune(':'), err)
		}
		fm.mu.Lock()
		fm.fonts[family] = f
		fm.mu.Unlock()
		fm.log("font loaded:", family, path)
	}

	fm.mu.Lock()
	defer fm.mu.Unlock()
	for _, h := range fm.handles {
		if h.Ready() {
			continue
		}
		if err := fm.bind(h); err != nil {
			return err
		}
	}
	return nil
}

// LoadAsync runs Load on its own goroutine and reports the result to done,
// which may be nil. In the browser this keeps the JS event loop free while
// the font files are fetched; charts render Deferred frames meanwhile.
func (fm *FontManager) LoadAsync(done func(error)) {
	go func() {
		err := fm.Load()
		if err != nil {
			fm.log(err)
		}
		if done != nil {
			done(err)
		}
	}()
}

// Font returns a measurer for family at size. When the family is not loaded
// yet the handle stays not ready until Load binds it.
func (fm *FontManager) Font(family string, size float64) *Font {
	h := &Font{Family: family, Size: size}
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.handles = append(fm.handles, h)
	if _, ok := fm.fonts[family]; ok {
		if err := fm.bind(h); err != nil {
			fm.log(err)
		}
	}
	return h
}

// bind is called with fm.mu held.
func (fm *FontManager) bind(h *Font) error {
	f, ok := fm.fonts[h.Family]
	if !ok {
		return fmt.Errf("font family '%s' not found", h.Family)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    h.Size,
		DPI:     DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return errs.New(errs.ErrFontFile, h.Family, rune(':'), err)
	}
	h.mu.Lock()
	h.face = face
	h.mu.Unlock()
	return nil
}

// Font is a lazily bound measurer for one family and size. It is safe to
// measure while another goroutine loads the font.
type Font struct {
	Family string
	Size   float64

	mu   sync.RWMutex
	face font.Face
}

func (f *Font) Ready() bool {
	if f == nil {
		return false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.face != nil
}

func (f *Font) Measure(text string) Size {
	if f == nil {
		return Size{}
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.face == nil {
		return Size{}
	}
	return NewFaceMeasurer(f.face).Measure(text)
}
