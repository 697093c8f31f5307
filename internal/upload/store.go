package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Допустимые расширения файлов изображений
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Store сохраняет изображения жалоб в каталоге на диске.
// В базе хранится только имя файла, каталог подставляется при отдаче.
type Store struct {
	dir string
}

// NewStore создает каталог загрузок, если его ещё нет
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Allowed проверяет, что расширение имени файла входит в список допустимых
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}

// Save записывает файл в каталог загрузок и возвращает сохранённое имя.
// Недопустимое расширение - не ошибка: жалоба принимается без изображения,
// поэтому возвращается пустая ссылка. Имя очищается от небезопасных символов
// и получает префикс unix-времени. Два одинаковых имени в одну секунду -
// известная коллизия, побеждает последняя запись.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	if filename == "" || !Allowed(filename) {
		return "", nil
	}

	name := sanitizeFilename(filename)
	if name == "" {
		return "", nil
	}

	ref := fmt.Sprintf("%d_%s", time.Now().Unix(), name)

	f, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return ref, nil
}

// Remove удаляет файл по сохранённому имени. Отсутствующий файл - не ошибка.
func (s *Store) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// Resolve возвращает путь к файлу для отдачи по HTTP.
// Для отсутствующего файла возвращается os.ErrNotExist.
func (s *Store) Resolve(ref string) (string, error) {
	// filepath.Base отсекает попытки выхода из каталога загрузок
	path := filepath.Join(s.dir, filepath.Base(ref))
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// sanitizeFilename приводит имя файла к безопасному виду
func sanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	return name
}
