// Package task contains the task resource endpoints
package task

const (
	msgShowFailed    = "Erro ao encontar o tarefa"
	msgUpdateFailed  = "Erro ao atualizar o tarefa"
	msgDestroyFailed = "Erro ao remover o tarefa"

	msgProjectNotFound = "Erro ao encontrar o projeto"
)
