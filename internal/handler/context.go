package handler

type ContextKey string

var (
	UserIDCtxKey      ContextKey = "userID"
	MyInfoCtx         ContextKey = "myInfo"
	JobApplicationCtx ContextKey = "jobApplication"
)
