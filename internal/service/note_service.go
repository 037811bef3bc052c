package service

import (
	"strings"

	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"
)

type NoteService struct {
	NoteRepo *repository.NoteRepository
}

func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{NoteRepo: noteRepo}
}

// NoteView 笔记的对外表示，tags展开为数组
type NoteView struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Week      int      `json:"week"`
	Day       string   `json:"day"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// JoinTags 标签数组转存储形式，去掉空白项
func JoinTags(tags []string) string {
	var cleaned []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

// SplitTags 存储形式转标签数组，空字符串对应空数组
func SplitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	return strings.Split(tags, ",")
}

func toNoteView(n *model.Note) NoteView {
	return NoteView{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      SplitTags(n.Tags),
		Week:      n.Week,
		Day:       n.Day,
		CreatedAt: n.CreatedAt.UTC().Format(util.TimeFormat),
		UpdatedAt: n.UpdatedAt.UTC().Format(util.TimeFormat),
	}
}

func (s *NoteService) Create(userID, title, content string, tags []string, week int, day string) (*NoteView, error) {
	note := &model.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
		Tags:    JoinTags(tags),
		Week:    week,
		Day:     day,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	view := toNoteView(note)
	return &view, nil
}

func (s *NoteService) List(userID string, filter repository.NoteFilter, page, limit int) ([]NoteView, int64, error) {
	notes, total, err := s.NoteRepo.FindByUser(userID, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	views := make([]NoteView, 0, len(notes))
	for i := range notes {
		views = append(views, toNoteView(&notes[i]))
	}
	return views, total, nil
}

// Search 标题、正文、标签的子串搜索
func (s *NoteService) Search(userID, query string, page, limit int) ([]NoteView, int64, error) {
	notes, total, err := s.NoteRepo.Search(userID, query, page, limit)
	if err != nil {
		return nil, 0, err
	}
	views := make([]NoteView, 0, len(notes))
	for i := range notes {
		views = append(views, toNoteView(&notes[i]))
	}
	return views, total, nil
}

// NoteUpdate nil字段不更新，Tags非nil时整体替换
type NoteUpdate struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
	Week    *int     `json:"week"`
	Day     *string  `json:"day"`
}

func (s *NoteService) Update(userID, noteID string, update NoteUpdate) (*NoteView, error) {
	note, err := s.NoteRepo.FindByIDAndUser(noteID, userID)
	if err != nil {
		return nil, util.ErrNoteNotFound
	}

	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.Tags != nil {
		note.Tags = JoinTags(update.Tags)
	}
	if update.Week != nil {
		note.Week = *update.Week
	}
	if update.Day != nil {
		note.Day = *update.Day
	}

	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	view := toNoteView(note)
	return &view, nil
}

func (s *NoteService) Delete(userID, noteID string) error {
	note, err := s.NoteRepo.FindByIDAndUser(noteID, userID)
	if err != nil {
		return util.ErrNoteNotFound
	}
	return s.NoteRepo.Delete(note)
}

func (s *NoteService) Get(userID, noteID string) (*NoteView, error) {
	note, err := s.NoteRepo.FindByIDAndUser(noteID, userID)
	if err != nil {
		return nil, util.ErrNoteNotFound
	}
	view := toNoteView(note)
	return &view, nil
}
