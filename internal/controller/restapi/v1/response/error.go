package response

type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
