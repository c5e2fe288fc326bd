package v1

import (
	"github.com/lmmlab/paper-writer/internal/usecase"
	"github.com/lmmlab/paper-writer/pkg/logger"
)

type V1 struct {
	method usecase.MethodUseCase
	logger logger.Interface
}
