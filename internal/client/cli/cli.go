package cli

import (
	"context"
	"fmt"

	clientapi "github.com/iudanet/splitbill/internal/client/api"
	"github.com/iudanet/splitbill/internal/client/cache"
	"github.com/iudanet/splitbill/internal/client/iocli"
	"github.com/iudanet/splitbill/internal/client/session"
	"github.com/iudanet/splitbill/pkg/api"
)

// Cli связывает команды с сессией, gateway клиентом и кэшем
type Cli struct {
	client  *clientapi.Client
	session *session.Session
	cache   *cache.Service
	io      iocli.IO
}

func New(client *clientapi.Client, sess *session.Session, cacheSvc *cache.Service, io iocli.IO) *Cli {
	return &Cli{
		client:  client,
		session: sess,
		cache:   cacheSvc,
		io:      io,
	}
}

// Run восстанавливает сессию и выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	// Initialize до любых решений о доступе; никогда не падает
	c.session.Initialize(ctx)

	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "whoami":
		return c.runWhoami(ctx, args)
	case "groups":
		return c.runGroups(ctx, args)
	case "invitations":
		return c.runInvitations(ctx, args)
	case "expenses":
		return c.runExpenses(ctx, args)
	case "dashboard":
		return c.runDashboard(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireAuth возвращает identity текущей сессии или ошибку
// для анонимного состояния
func (c *Cli) requireAuth() (*api.User, error) {
	user := c.session.Identity()
	if user == nil {
		return nil, fmt.Errorf("not authenticated. Please run 'splitbill login' first")
	}
	return user, nil
}
