package note

import "time"

// Note — запись дневника. Image хранит data URI картинки, если она прикреплена.
type Note struct {
	ID      string    `json:"id" yaml:"id"`
	Date    time.Time `json:"date" yaml:"date"`
	Title   string    `json:"title" yaml:"title"`
	Content string    `json:"content" yaml:"content"`
	Image   string    `json:"image,omitempty" yaml:"image,omitempty"`
}

// Draft — данные формы создания/редактирования записи.
type Draft struct {
	Title   string
	Content string
	Image   string
}

func (n Note) HasImage() bool {
	return n.Image != ""
}
