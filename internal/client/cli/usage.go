package cli

import "fmt"

func PrintUsage() {
	fmt.Println("Splitbill Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  splitbill [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version               Show version information")
	fmt.Println("  --server URL            Server URL (default: http://localhost:8000, env SPLITBILL_SERVER)")
	fmt.Println("  --db PATH               Path to local database (default: splitbill-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                       Register new account")
	fmt.Println("  login                          Login to server")
	fmt.Println("  logout                         Logout and clear local session")
	fmt.Println("  whoami [--remote]              Show current identity (--remote re-fetches from server)")
	fmt.Println("  dashboard [--cached]           Groups, recent expenses and your balance")
	fmt.Println("  groups list                    List your groups")
	fmt.Println("  groups show <id>               Show group details")
	fmt.Println("  groups create                  Create a group")
	fmt.Println("  groups update <id>             Update group name/description")
	fmt.Println("  groups delete <id>             Delete a group")
	fmt.Println("  groups invite <id> <email>     Invite a user by email")
	fmt.Println("  groups add-member <id> <email> Add a member by email")
	fmt.Println("  invitations list               List your invitations")
	fmt.Println("  invitations accept <id>        Accept an invitation")
	fmt.Println("  invitations reject <id>        Reject an invitation")
	fmt.Println("  expenses list [group-id]       List expenses, optionally for one group")
	fmt.Println("  expenses show <id>             Show expense details")
	fmt.Println("  expenses add                   Record a new expense")
	fmt.Println("  expenses update <id>           Update an expense")
	fmt.Println("  expenses delete <id>           Delete an expense")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  splitbill register")
	fmt.Println("  splitbill login")
	fmt.Println("  splitbill groups create")
	fmt.Println("  splitbill expenses list 7")
	fmt.Println("  splitbill --server https://example.com dashboard")
}
