// Package roadmap 内置14周DSA学习路线图与配套资源目录
package roadmap

import (
	"strings"
)

// Resource 学习资源条目
type Resource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // text / video / interactive / practice
}

// Project 每周的实战项目
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Day 单日学习安排，Resources为资源ID列表
type Day struct {
	Day          string   `json:"day"`
	Topic        string   `json:"topic"`
	Activities   string   `json:"activities"`
	Resources    []string `json:"resources"`
	TimeEstimate int      `json:"time_estimate"`
}

// Week 单周学习安排
type Week struct {
	Week    int     `json:"week"`
	Title   string  `json:"title"`
	Goal    string  `json:"goal"`
	Project Project `json:"project"`
	Days    []Day   `json:"days"`
}

var resourceIndex = buildResourceIndex()

func buildResourceIndex() map[string]*Resource {
	idx := make(map[string]*Resource, len(Resources))
	for i := range Resources {
		idx[Resources[i].ID] = &Resources[i]
	}
	return idx
}

// ResourceByID 按ID查找资源，不存在时返回nil
func ResourceByID(id string) *Resource {
	return resourceIndex[id]
}

// WeekByNumber 按周数查找，不存在时返回nil
func WeekByNumber(n int) *Week {
	for i := range Weeks {
		if Weeks[i].Week == n {
			return &Weeks[i]
		}
	}
	return nil
}

// TotalDays 路线图中的总学习天数
func TotalDays() int {
	total := 0
	for i := range Weeks {
		total += len(Weeks[i].Days)
	}
	return total
}

// FilterResourcesByType 按类型过滤资源，类型为空时返回全部
func FilterResourcesByType(resourceType string) []Resource {
	if resourceType == "" {
		return Resources
	}
	var out []Resource
	for _, r := range Resources {
		if r.Type == resourceType {
			out = append(out, r)
		}
	}
	return out
}

// SearchResources 标题或URL的大小写不敏感子串匹配
func SearchResources(query string) []Resource {
	q := strings.ToLower(query)
	var out []Resource
	for _, r := range Resources {
		if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.URL), q) {
			out = append(out, r)
		}
	}
	return out
}

// SearchWeeks 标题或目标的大小写不敏感子串匹配
func SearchWeeks(query string) []Week {
	q := strings.ToLower(query)
	var out []Week
	for _, w := range Weeks {
		if strings.Contains(strings.ToLower(w.Title), q) || strings.Contains(strings.ToLower(w.Goal), q) {
			out = append(out, w)
		}
	}
	return out
}

// RelevantResources 按问题关键词挑选资源，最多返回limit条
func RelevantResources(question string, limit int) []Resource {
	words := questionWords(question)
	var out []Resource
	for _, r := range Resources {
		title := strings.ToLower(r.Title)
		for _, w := range words {
			if strings.Contains(title, w) {
				out = append(out, r)
				break
			}
		}
		if len(out) >= limit {
			break
		}
	}
	return out
}

// RelevantWeeks 按问题关键词挑选周主题，最多返回limit条
func RelevantWeeks(question string, limit int) []Week {
	words := questionWords(question)
	var out []Week
	for _, wk := range Weeks {
		text := strings.ToLower(wk.Title + " " + wk.Goal)
		for _, w := range words {
			if strings.Contains(text, w) {
				out = append(out, wk)
				break
			}
		}
		if len(out) >= limit {
			break
		}
	}
	return out
}

// questionWords 小写后按空白切词，标点保留在词内
func questionWords(question string) []string {
	return strings.Fields(strings.ToLower(question))
}
