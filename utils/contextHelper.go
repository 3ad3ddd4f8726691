package utils

import (
	"context"

	"github.com/richardfsdias/trabalho-marmoraria-jacone/appctx"
)

var (
	ContextKeyToken         = appctx.ContextKeyToken
	ContextKeyFuncionarioId = appctx.ContextKeyFuncionarioId
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
)

func GetTokenFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyToken)
}

func GetFuncionarioIdFromContext(ctx context.Context) (int, bool) {
	return appctx.GetInt(ctx, ContextKeyFuncionarioId)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetTokenInContext(ctx context.Context, token string) context.Context {
	return appctx.Set(ctx, ContextKeyToken, token)
}

func SetFuncionarioIdInContext(ctx context.Context, id int) context.Context {
	return appctx.Set(ctx, ContextKeyFuncionarioId, id)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}
