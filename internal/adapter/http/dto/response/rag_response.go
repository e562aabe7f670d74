package response

type IngestResponse struct {
	IndexName string `json:"index_name"`
	Chunks    int    `json:"chunks"`
}

type QueryResponse struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}
