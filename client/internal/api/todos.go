package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/todoapp/todo-client/client/internal/types"
)

// Operation names, used in error messages and as metric labels.
const (
	OpList   = "list todos"
	OpCreate = "create todo"
	OpUpdate = "update todo"
	OpDelete = "delete todo"
)

const todosPath = "/todos"

func todoPath(id int) string { return todosPath + "/" + strconv.Itoa(id) }

// ListTodos returns the owner's todos in the order the service sends them.
func ListTodos(ctx context.Context, rq Requester) ([]types.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{"userId": {strconv.Itoa(types.OwnerID)}}
	var todos []types.Todo
	if err := rq.Get(ctx, OpList, todosPath, q, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo posts a new todo with the given title. Client-side validation is
// intentionally absent; the server is the authority.
func CreateTodo(ctx context.Context, rq Requester, title string) (*types.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var todo types.Todo
	if err := rq.Post(ctx, OpCreate, todosPath, types.NewCreateTodoRequest(title), &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo patches title and completed on the todo selected by t.ID.
// t.UserID is ignored.
func UpdateTodo(ctx context.Context, rq Requester, t types.Todo) (*types.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var todo types.Todo
	if err := rq.Patch(ctx, OpUpdate, todoPath(t.ID), types.NewUpdateTodoRequest(t), &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes the todo with the given id and returns the service's
// acknowledgement unmodified. Repeated deletes are forwarded as-is.
func DeleteTodo(ctx context.Context, rq Requester, id int) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rq.Delete(ctx, OpDelete, todoPath(id))
}
