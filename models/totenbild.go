package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DummyImagePrefix marks filenames that belong to the built-in demo dataset.
const DummyImagePrefix = "dummy_"

// Totenbild is one archived memorial card: a deceased person with the
// scanned images that belong to it. It corresponds to the 'totenbilder' table.
// JSON field names follow the legacy column names the front end consumes.
type Totenbild struct {
	NID         int64   `json:"nid"`
	Alias       *string `json:"alias"`
	Name        *string `json:"Name"`
	Vorname     *string `json:"Vorname"`
	Nachname    *string `json:"Nachname"`
	Ledigname   *string `json:"Ledigname"`
	Ort         *string `json:"Ort"`
	Strasse     *string `json:"Strasse"`
	Geschlecht  *string `json:"Geschlecht"`
	Bekenntnis  *string `json:"Bekenntnis"`
	Beruf1      *string `json:"Beruf1"`
	Beruf2      *string `json:"Beruf2"`
	Geburtsjahr *int    `json:"Geburtsjahr"`
	Sterbedatum *string `json:"Sterbedatum"`
	Sterbetag   *int    `json:"Sterbetag"`
	Sterbemonat *int    `json:"Sterbemonat"`
	Sterbejahr  *int    `json:"Sterbejahr"`
	Sterbealter *int    `json:"Sterbealter"`
	Bemerkung   *string `json:"Bemerkung"`

	// Images is never nil once a record leaves the assembler.
	Images []TotenbildImage `json:"images"`
}

// TotenbildImage is one scanned image of a memorial card ('totenbilder_bilder').
type TotenbildImage struct {
	Filename string `json:"filename"`
	Width    *int   `json:"width"`
	Height   *int   `json:"height"`
	Filemime string `json:"filemime"`
	URL      string `json:"url,omitempty"` // filled by handlers via ImageURLBuilder
}

// IsLandscape reports whether the image is wider than tall. Unknown sizes count as zero.
func (img TotenbildImage) IsLandscape() bool {
	return deref(img.Width) > deref(img.Height)
}

// ImageURLBuilder turns stored filenames into retrieval URLs.
type ImageURLBuilder struct {
	BaseURL        string
	PlaceholderURL string
}

// URL returns the public URL of a stored image. Demo filenames resolve to the
// placeholder service instead of the archive host.
func (b ImageURLBuilder) URL(filename string) string {
	if strings.HasPrefix(filename, DummyImagePrefix) {
		return b.PlaceholderURL + filename
	}
	return b.BaseURL + filename
}

// Resolve fills the URL of every image of the given records in place.
func (b ImageURLBuilder) Resolve(records []Totenbild) {
	for i := range records {
		for j := range records[i].Images {
			records[i].Images[j].URL = b.URL(records[i].Images[j].Filename)
		}
	}
}

// DisplayName is "Nachname Vorname" when both parts exist, else the stored Name.
func (t *Totenbild) DisplayName() string {
	parts := make([]string, 0, 2)
	if s := derefString(t.Nachname); s != "" {
		parts = append(parts, s)
	}
	if s := derefString(t.Vorname); s != "" {
		parts = append(parts, s)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return derefString(t.Name)
}

// FormatDeathDate renders DD.MM.YYYY from the date components, falling back to
// the legacy date string, the bare year, and finally an em dash placeholder.
func (t *Totenbild) FormatDeathDate() string {
	if deref(t.Sterbetag) != 0 && deref(t.Sterbemonat) != 0 && deref(t.Sterbejahr) != 0 {
		return fmt.Sprintf("%02d.%02d.%d", *t.Sterbetag, *t.Sterbemonat, *t.Sterbejahr)
	}
	if s := derefString(t.Sterbedatum); s != "" {
		return s
	}
	if t.Sterbejahr != nil {
		return strconv.Itoa(*t.Sterbejahr)
	}
	return "—"
}

// Age is the recorded age at death, else the difference of death and birth
// year, else the placeholder.
func (t *Totenbild) Age() string {
	if deref(t.Sterbealter) != 0 {
		return strconv.Itoa(*t.Sterbealter)
	}
	if deref(t.Geburtsjahr) != 0 && deref(t.Sterbejahr) != 0 {
		return strconv.Itoa(*t.Sterbejahr - *t.Geburtsjahr)
	}
	return "—"
}

// Link is the public page of the record, preferring the alias.
func (t *Totenbild) Link() string {
	if a := derefString(t.Alias); a != "" {
		return "/totenbild/" + url.PathEscape(a)
	}
	return "/person/" + strconv.FormatInt(t.NID, 10)
}

// FirstImage returns the cover image, or nil for records without scans.
func (t *Totenbild) FirstImage() *TotenbildImage {
	if len(t.Images) == 0 {
		return nil
	}
	return &t.Images[0]
}

// Clone copies the record with its own image slice; cached and built-in
// records are shared, so callers resolving URLs must work on a clone.
func (t *Totenbild) Clone() Totenbild {
	c := *t
	c.Images = make([]TotenbildImage, len(t.Images))
	copy(c.Images, t.Images)
	return c
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// StringPtr and IntPtr help build records in code (demo data, tests).
func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }
