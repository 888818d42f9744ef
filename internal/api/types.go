package api

type CountRequest struct {
	Sequence string `json:"sequence"`
}
