// Package account models the store's principals (customers, delivery
// employees, admins) and the employee registration workflow.
package account
