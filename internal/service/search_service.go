package service

import (
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/roadmap"
	"dsa_prep_backend/internal/util"
)

type SearchService struct {
	NoteRepo *repository.NoteRepository
}

func NewSearchService(noteRepo *repository.NoteRepository) *SearchService {
	return &SearchService{NoteRepo: noteRepo}
}

const (
	SearchTypeAll       = "all"
	SearchTypeResources = "resources"
	SearchTypeRoadmap   = "roadmap"
	SearchTypeNotes     = "notes"

	roadmapResultCap = 10
	snippetLength    = 200
)

// NoteSearchHit 笔记搜索结果，正文截断为摘要
type NoteSearchHit struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	UpdatedAt string   `json:"updated_at"`
}

// NotesPagination 笔记搜索的分页信息
type NotesPagination struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
}

// SearchResults 按类别分组的搜索结果，未请求的类别为nil
type SearchResults struct {
	Resources       []roadmap.Resource `json:"resources,omitempty"`
	ResourcesTotal  *int               `json:"resources_total,omitempty"`
	Roadmap         []roadmap.Week     `json:"roadmap,omitempty"`
	Notes           []NoteSearchHit    `json:"notes,omitempty"`
	NotesPagination *NotesPagination   `json:"notes_pagination,omitempty"`
}

// Search 跨资源目录、路线图、用户笔记的联合搜索。
// 各类别独立分页：资源按page/limit切片，路线图固定截前10条。
func (s *SearchService) Search(userID, query, searchType string, page, limit int) (*SearchResults, error) {
	results := &SearchResults{}

	if searchType == SearchTypeAll || searchType == SearchTypeResources {
		matched := roadmap.SearchResources(query)
		total := len(matched)
		start := (page - 1) * limit
		end := start + limit
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		results.Resources = matched[start:end]
		if results.Resources == nil {
			results.Resources = []roadmap.Resource{}
		}
		results.ResourcesTotal = &total
	}

	if searchType == SearchTypeAll || searchType == SearchTypeRoadmap {
		matched := roadmap.SearchWeeks(query)
		if len(matched) > roadmapResultCap {
			matched = matched[:roadmapResultCap]
		}
		if matched == nil {
			matched = []roadmap.Week{}
		}
		results.Roadmap = matched
	}

	if searchType == SearchTypeAll || searchType == SearchTypeNotes {
		notes, total, err := s.NoteRepo.Search(userID, query, page, limit)
		if err != nil {
			return nil, err
		}

		hits := make([]NoteSearchHit, 0, len(notes))
		for _, n := range notes {
			// 按字符截断，避免把多字节字符切到一半
			content := n.Content
			if runes := []rune(content); len(runes) > snippetLength {
				content = string(runes[:snippetLength]) + "..."
			}
			hits = append(hits, NoteSearchHit{
				ID:        n.ID,
				Title:     n.Title,
				Content:   content,
				Tags:      SplitTags(n.Tags),
				UpdatedAt: n.UpdatedAt.UTC().Format(util.TimeFormat),
			})
		}

		pages := int(total) / limit
		if int(total)%limit > 0 {
			pages++
		}
		results.Notes = hits
		results.NotesPagination = &NotesPagination{
			Page:  page,
			Pages: pages,
			Total: total,
		}
	}

	return results, nil
}
