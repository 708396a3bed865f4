package story

type CreateRequest struct {
	Title    string `json:"title"`
	AgeGroup string `json:"age_group"`
}

type StoryResponse struct {
	Story string `json:"story"`
}
