// Package storage guarda los archivos subidos en disco bajo
// uploads/<categoria>/<timestamp>_<nombre-saneado>.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyFilename   = errors.New("nombre de archivo vacío")
	ErrDisallowedType  = errors.New("tipo de archivo no permitido")
	ErrUnknownCategory = errors.New("categoría desconocida")
)

// Categorías válidas; cada una es un subdirectorio fijo, nunca un valor libre
// del cliente.
const (
	CategoryEvents   = "events"
	CategoryGallery  = "gallery"
	CategoryHero     = "hero"
	CategorySponsors = "sponsors"
)

var categories = map[string]bool{
	CategoryEvents:   true,
	CategoryGallery:  true,
	CategoryHero:     true,
	CategorySponsors: true,
}

// ValidCategory reporta si el nombre corresponde a una categoría conocida.
func ValidCategory(category string) bool {
	return categories[category]
}

var allowedExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".svg": true,
	".mp4": true, ".webm": true, ".mov": true,
}

// AllowedFile comprueba la extensión contra la lista de formatos de imagen y
// video aceptados. Solo mira el sufijo; no se inspecciona el contenido.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename elimina separadores de ruta y caracteres peligrosos del
// nombre original, al estilo de secure_filename de werkzeug.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	// Sin puntos iniciales: ni archivos ocultos ni restos de "..".
	name = strings.TrimLeft(name, ".")
	return name
}

// AltFromFilename deriva un texto alternativo legible a partir del nombre del
// archivo: sin extensión y con separadores convertidos en espacios.
func AltFromFilename(filename string) string {
	name := SanitizeFilename(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

// FileStore escribe archivos bajo un directorio raíz local.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

// Save valida y guarda un archivo subido dentro de la categoría indicada y
// devuelve la URL pública relativa (/uploads/<categoria>/<nombre>).
//
// El nombre queda prefijado con un timestamp de resolución de segundos; las
// cargas masivas usan SaveUnique para evitar colisiones dentro del mismo
// segundo.
func (fs *FileStore) Save(fh *multipart.FileHeader, category string) (string, error) {
	return fs.save(fh, category, false)
}

// SaveUnique es Save con timestamp de microsegundos.
func (fs *FileStore) SaveUnique(fh *multipart.FileHeader, category string) (string, error) {
	return fs.save(fh, category, true)
}

func (fs *FileStore) save(fh *multipart.FileHeader, category string, micro bool) (string, error) {
	if !ValidCategory(category) {
		return "", ErrUnknownCategory
	}
	name := SanitizeFilename(fh.Filename)
	if name == "" {
		return "", ErrEmptyFilename
	}
	if !AllowedFile(name) {
		return "", ErrDisallowedType
	}

	now := time.Now()
	stamp := now.Format("20060102_150405")
	if micro {
		stamp = fmt.Sprintf("%s_%06d", stamp, now.Nanosecond()/1000)
	}
	name = stamp + "_" + name

	dir := filepath.Join(fs.Root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + category + "/" + name, nil
}

// Remove borra del disco el archivo al que apunta una URL pública. Es un
// borrado de cortesía al eliminar la fila; si falla, el archivo queda como
// basura recolectable.
func (fs *FileStore) Remove(publicURL string) {
	rel, ok := strings.CutPrefix(publicURL, "/uploads/")
	if !ok || rel == "" {
		return
	}
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(fs.Root, rel))
}
