package diary

import (
	"context"
	"errors"
	"fmt"
	"os"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/view"
	"diarykeeper/internal/utils/ident"
)

func (a *App) CreateNote(ctx context.Context, draft note.Draft) (note.Note, error) {
	if err := a.unlocked(); err != nil {
		return note.Note{}, err
	}
	return a.notes.Create(ctx, draft)
}

// UpdateNote правит запись по id или его части. Несуществующая запись
// или пустые обязательные поля не считаются ошибкой: applied=false.
func (a *App) UpdateNote(ctx context.Context, id string, draft note.Draft) (note.Note, bool, error) {
	if err := a.unlocked(); err != nil {
		return note.Note{}, false, err
	}
	id, err := a.resolveNote(id)
	if err != nil {
		return note.Note{}, false, err
	}
	return a.notes.Update(ctx, id, draft)
}

func (a *App) DeleteNote(ctx context.Context, id string) (bool, error) {
	if err := a.unlocked(); err != nil {
		return false, err
	}
	id, err := a.resolveNote(id)
	if err != nil {
		return false, err
	}
	return a.notes.Delete(ctx, id)
}

// Note ищет запись по id или его однозначной части.
func (a *App) Note(id string) (note.Note, error) {
	if err := a.unlocked(); err != nil {
		return note.Note{}, err
	}
	return a.notes.Find(id)
}

// Notes возвращает записи, отсортированные по дате.
func (a *App) Notes(order view.SortOrder) ([]note.Note, error) {
	if err := a.unlocked(); err != nil {
		return nil, err
	}
	return view.SortedNotes(a.notes.List(), order), nil
}

func (a *App) TodayNotes() ([]note.Note, error) {
	if err := a.unlocked(); err != nil {
		return nil, err
	}
	return view.TodayNotes(a.notes.List(), a.now()), nil
}

// LoadImage читает файл картинки и возвращает data URI для записи.
func (a *App) LoadImage(path string) (string, error) {
	if err := a.unlocked(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	if info.Size() > a.config.MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", note.ErrImageTooLarge, info.Size(), a.config.MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return note.EncodeImageFile(path, data, a.config.MaxImageBytes)
}

// SaveImage сохраняет картинку записи в файл. Пустой path означает
// <последние 8 символов id><расширение> в текущем каталоге.
func (a *App) SaveImage(id, path string) (string, error) {
	n, err := a.Note(id)
	if err != nil {
		return "", err
	}
	if !n.HasImage() {
		return "", fmt.Errorf("note %s has no image", n.ID)
	}

	mime, data, err := note.DecodeImage(n.Image)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = ident.Short(n.ID) + note.ImageExtension(mime)
	}
	if err := writeFileAtomic(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// resolveNote раскрывает часть id. Не найденный id возвращается как есть.
func (a *App) resolveNote(id string) (string, error) {
	n, err := a.notes.Find(id)
	if errors.Is(err, note.ErrNotFound) {
		return id, nil
	}
	if err != nil {
		return "", err
	}
	return n.ID, nil
}
