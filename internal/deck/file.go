package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// File is a JSON-file-backed Document, the sidecar representation of a
// slide deck used by the CLI and by tests. Each operation rereads the
// whole file and each mutation rewrites it, mirroring the host's
// whole-blob persistence contract.
type File struct {
	path string

	// mu serializes file access within one process. It does not
	// protect against concurrent writers in other processes.
	mu sync.Mutex
}

// fileData is the on-disk shape of a deck file.
type fileData struct {
	Pages  []pageData        `json:"pages"`
	Blocks map[string]string `json:"blocks,omitempty"`
}

type pageData struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Open returns a File for an existing or not-yet-created deck file.
func Open(path string) *File {
	return &File{path: path}
}

// Init creates a new deck file with the given page IDs. It fails if
// the file already exists.
func Init(path string, pageIDs []string) (*File, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("deck file already exists: %s", path)
	}
	d := &File{path: path}
	data := fileData{}
	for _, id := range pageIDs {
		data.Pages = append(data.Pages, pageData{ID: id})
	}
	if err := d.write(data); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the deck file path.
func (d *File) Path() string {
	return d.path
}

func (d *File) read() (fileData, error) {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileData{}, nil // Missing file behaves as an empty deck
		}
		return fileData{}, fmt.Errorf("reading deck file: %w", err)
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fileData{}, fmt.Errorf("parsing deck file: %w", err)
	}
	return data, nil
}

func (d *File) write(data fileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding deck file: %w", err)
	}
	if err := os.WriteFile(d.path, raw, 0644); err != nil {
		return fmt.Errorf("writing deck file: %w", err)
	}
	return nil
}

// Block returns a document-scoped data block, or "" when absent.
func (d *File) Block(ctx context.Context, name string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := d.read()
	if err != nil {
		return "", err
	}
	return data.Blocks[name], nil
}

// SetBlock overwrites a document-scoped data block.
func (d *File) SetBlock(ctx context.Context, name, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := d.read()
	if err != nil {
		return err
	}
	if data.Blocks == nil {
		data.Blocks = make(map[string]string)
	}
	data.Blocks[name] = value
	return d.write(data)
}

// DeleteBlock removes a document-scoped data block if present.
func (d *File) DeleteBlock(ctx context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := d.read()
	if err != nil {
		return err
	}
	if _, ok := data.Blocks[name]; !ok {
		return nil
	}
	delete(data.Blocks, name)
	return d.write(data)
}

// Pages returns the deck's pages in presentation order.
func (d *File) Pages(ctx context.Context) ([]Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := d.read()
	if err != nil {
		return nil, err
	}
	pages := make([]Page, len(data.Pages))
	for i, p := range data.Pages {
		pages[i] = &filePage{deck: d, id: p.ID}
	}
	return pages, nil
}

// PageByID returns the page with the given ID.
func (d *File) PageByID(ctx context.Context, id string) (Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := d.read()
	if err != nil {
		return nil, err
	}
	for _, p := range data.Pages {
		if p.ID == id {
			return &filePage{deck: d, id: id}, nil
		}
	}
	return nil, fmt.Errorf("page not found: %s", id)
}

// AddPage appends a new page with the given ID.
func (d *File) AddPage(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := d.read()
	if err != nil {
		return err
	}
	for _, p := range data.Pages {
		if p.ID == id {
			return fmt.Errorf("page already exists: %s", id)
		}
	}
	data.Pages = append(data.Pages, pageData{ID: id})
	return d.write(data)
}

// filePage is a handle into its parent File; it holds no state beyond
// the page ID, so stale handles always observe current file contents.
type filePage struct {
	deck *File
	id   string
}

func (p *filePage) ID() string {
	return p.id
}

func (p *filePage) Metadata(ctx context.Context, key string) (string, error) {
	p.deck.mu.Lock()
	defer p.deck.mu.Unlock()
	data, err := p.deck.read()
	if err != nil {
		return "", err
	}
	for _, pd := range data.Pages {
		if pd.ID == p.id {
			return pd.Metadata[key], nil
		}
	}
	return "", fmt.Errorf("page not found: %s", p.id)
}

func (p *filePage) SetMetadata(ctx context.Context, key, value string) error {
	p.deck.mu.Lock()
	defer p.deck.mu.Unlock()
	data, err := p.deck.read()
	if err != nil {
		return err
	}
	for i, pd := range data.Pages {
		if pd.ID != p.id {
			continue
		}
		if value == "" {
			delete(data.Pages[i].Metadata, key)
		} else {
			if data.Pages[i].Metadata == nil {
				data.Pages[i].Metadata = make(map[string]string)
			}
			data.Pages[i].Metadata[key] = value
		}
		return p.deck.write(data)
	}
	return fmt.Errorf("page not found: %s", p.id)
}
