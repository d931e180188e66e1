package middleware

import "context"

type requestInfoKey struct{}

// requestInfo lets inner middleware report back to Logger, which wraps them.
type requestInfo struct {
	userID int64
}

func withRequestInfo(ctx context.Context, info *requestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}
