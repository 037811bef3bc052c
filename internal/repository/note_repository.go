package repository

import (
	"dsa_prep_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

// NoteFilter 笔记列表的过滤条件，零值字段不参与过滤
type NoteFilter struct {
	Week int
	Day  string
	Tag  string
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByIDAndUser(id, userID string) (*model.Note, error) {
	var note model.Note
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Update(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(note *model.Note) error {
	return r.DB.Delete(note).Error
}

func (r *NoteRepository) FindByUser(userID string, filter NoteFilter, page, limit int) ([]model.Note, int64, error) {
	var notes []model.Note
	var total int64

	query := r.DB.Model(&model.Note{}).Where("user_id = ?", userID)
	if filter.Week > 0 {
		query = query.Where("week = ?", filter.Week)
	}
	if filter.Day != "" {
		query = query.Where("day = ?", filter.Day)
	}
	if filter.Tag != "" {
		query = query.Where("tags LIKE ?", "%"+filter.Tag+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notes).Error
	return notes, total, err
}

// Search 在标题、正文、标签中做大小写不敏感的子串匹配
func (r *NoteRepository) Search(userID, query string, page, limit int) ([]model.Note, int64, error) {
	var notes []model.Note
	var total int64

	pattern := "%" + query + "%"
	q := r.DB.Model(&model.Note{}).
		Where("user_id = ?", userID).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)",
			pattern, pattern, pattern)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notes).Error
	return notes, total, err
}

func (r *NoteRepository) FindRecent(userID string, limit int) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}
