package client

import "github.com/todoapp/todo-client/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type Todo = types.Todo

// OwnerID is the fixed owner every operation is scoped to.
const OwnerID = types.OwnerID
