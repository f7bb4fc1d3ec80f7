package checklist

type ChecklistResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	CheckType string             `json:"check_type"`
	Questions []QuestionResponse `json:"questions,omitempty"`
}

type QuestionResponse struct {
	ID        int64    `json:"id"`
	Descr     string   `json:"descr"`
	QType     string   `json:"qtype"`
	Mandatory bool     `json:"mandatory"`
	Options   []string `json:"options,omitempty"`
}

func ToChecklistResponse(c Checklist) ChecklistResponse {
	resp := ChecklistResponse{
		ID:        c.ID,
		Name:      c.Name,
		CheckType: c.CheckType,
	}
	for _, q := range c.Questions {
		resp.Questions = append(resp.Questions, QuestionResponse{
			ID:        q.ID,
			Descr:     q.Descr,
			QType:     q.QType,
			Mandatory: q.Mandatory,
			Options:   q.Options,
		})
	}
	return resp
}
