// Package project contains the project resource endpoints
package project

const (
	msgShowFailed    = "Erro ao encontrar o projeto"
	msgUpdateFailed  = "Erro ao atualizar o projeto"
	msgDestroyFailed = "Erro ao deletar o projeto"
)
