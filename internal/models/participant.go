package models

type Participant struct {
	Name string `json:"name"`
	CPF  string `json:"cpf"`
	PCD  bool   `json:"pcd"`
}
