// containers.go
//
// A song, artist, genre and award catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of songcatalog.
// songcatalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// songcatalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with songcatalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/songcatalog/data"
	"github.com/localnerve/songcatalog/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestContainers is the container environment for integration and end to end runs.
// Expects the environment to be loaded from a .env file.
type TestContainers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container
	CatalogContainer    testcontainers.Container
}

// Terminate stops every started container and removes the network
func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	for _, c := range []struct {
		name      string
		container testcontainers.Container
	}{
		{"songcatalog", tc.CatalogContainer},
		{"Authorizer", tc.AuthorizerContainer},
		{"database", tc.DBContainer},
	} {
		if c.container == nil {
			continue
		}
		if err := c.container.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate %s: %v", c.name, err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// DBConfig returns the application config pointed at the mapped database port
func (tc *TestContainers) DBConfig(ctx context.Context) (*config.Config, error) {
	host, err := tc.DBContainer.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := tc.DBContainer.MappedPort(ctx, nat.Port(os.Getenv("DB_PORT")+"/tcp"))
	if err != nil {
		return nil, err
	}

	return &config.Config{
		DBType:            os.Getenv("DB_TYPE"),
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        os.Getenv("DB_DATABASE"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBConnectionLimit: 4,
		LogMode:           "production",
	}, nil
}

// SkipWithoutContainers skips t in -short mode or when no database image is configured
func SkipWithoutContainers(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}
	if os.Getenv("DB_IMAGE") == "" {
		t.Skip("Skipping container test, DB_IMAGE not set")
	}
}

// StartDatabase starts the database container alone, on its own network
func StartDatabase(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	tc := &TestContainers{}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	tc.Network = nw

	if err := tc.startDatabase(ctx, t); err != nil {
		tc.Terminate(t)
		return nil, err
	}
	return tc, nil
}

// CreateAllTestContainers starts the database, then the Authorizer when
// AUTHZ_IMAGE is set, then the service when CATALOG_IMAGE exists locally.
// With a nil t, failures exit the process.
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()

	tc, err := StartDatabase(t)
	if err != nil {
		exitWithError(t, err, "Failed to start database")
		return nil, err
	}

	if os.Getenv("AUTHZ_IMAGE") != "" {
		if err := tc.startAuthorizer(ctx, t); err != nil {
			tc.Terminate(t)
			exitWithError(t, err, "Failed to start Authorizer")
			return nil, err
		}
	}

	if catalogImage := os.Getenv("CATALOG_IMAGE"); catalogImage != "" {
		exists, err := imageExists(ctx, catalogImage)
		if err != nil {
			tc.Terminate(t)
			exitWithError(t, err, "Failed to check if image exists")
			return nil, err
		}
		if !exists {
			logMessage(t, "Image %s does not exist, build it first to run the service container", catalogImage)
		} else if err := tc.startCatalog(ctx, t, catalogImage); err != nil {
			tc.Terminate(t)
			exitWithError(t, err, "Failed to start songcatalog")
			return nil, err
		}
	}

	logMessage(t, "Test containers started successfully")
	return tc, nil
}

func (tc *TestContainers) startDatabase(ctx context.Context, t *testing.T) error {
	dbType := os.Getenv("DB_TYPE")
	tcpDBPort, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		return fmt.Errorf("failed to create DB port: %w", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDBPort)},
			Env:          dbInitEnv(dbType),
			WaitingFor:   wait.ForListeningPort(tcpDBPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{tc.Network.Name},
			NetworkAliases: map[string][]string{
				tc.Network.Name: {os.Getenv("DB_HOST")},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start database: %w", err)
	}
	tc.DBContainer = dbContainer

	host, _ := dbContainer.Host(ctx)
	port, _ := dbContainer.MappedPort(ctx, tcpDBPort)
	logMessage(t, "DB_HOST=%s DB_PORT=%s", host, port.Port())

	switch dbType {
	case "mysql", "mariadb":
		return initMySQL(host, port)
	}
	// postgres: the image creates the database and user, AutoMigrate creates the tables
	return nil
}

func (tc *TestContainers) startAuthorizer(ctx context.Context, t *testing.T) error {
	tcpAuthzPort, err := nat.NewPort("tcp", os.Getenv("AUTHZ_PORT"))
	if err != nil {
		return fmt.Errorf("failed to create Authorizer port: %w", err)
	}

	authzDBConnection := fmt.Sprintf("root:%s@tcp(%s:%s)/%s",
		os.Getenv("DB_ROOT_PASSWORD"), os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("AUTHZ_DATABASE"))

	authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("AUTHZ_IMAGE"),
			ExposedPorts: []string{string(tcpAuthzPort)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     os.Getenv("AUTHZ_CLIENT_ID"),
				"PORT":          os.Getenv("AUTHZ_PORT"),
				"DATABASE_TYPE": os.Getenv("DB_TYPE"),
				"DATABASE_NAME": os.Getenv("AUTHZ_DATABASE"),
				"DATABASE_URL":  authzDBConnection,
				"ADMIN_SECRET":  os.Getenv("AUTHZ_ADMIN_SECRET"),
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
			Networks:   []string{tc.Network.Name},
			NetworkAliases: map[string][]string{
				tc.Network.Name: {"authorizer"},
			},
		},
		Started: true,
	})
	if err != nil {
		return err
	}
	tc.AuthorizerContainer = authorizerContainer

	host, _ := authorizerContainer.Host(ctx)
	port, _ := authorizerContainer.MappedPort(ctx, tcpAuthzPort)
	logMessage(t, "AUTHZ_URL=http://%s:%s", host, port.Port())
	return nil
}

func (tc *TestContainers) startCatalog(ctx context.Context, t *testing.T, imageName string) error {
	tcpPort, err := nat.NewPort("tcp", os.Getenv("PORT"))
	if err != nil {
		return fmt.Errorf("failed to create songcatalog port: %w", err)
	}

	env := map[string]string{
		"DB_TYPE":             os.Getenv("DB_TYPE"),
		"DB_HOST":             os.Getenv("DB_HOST"),
		"DB_PORT":             os.Getenv("DB_PORT"),
		"DB_DATABASE":         os.Getenv("DB_DATABASE"),
		"DB_USER":             os.Getenv("DB_USER"),
		"DB_PASSWORD":         os.Getenv("DB_PASSWORD"),
		"DB_CONNECTION_LIMIT": os.Getenv("DB_CONNECTION_LIMIT"),
		"LOG_MODE":            "production",
		"PORT":                os.Getenv("PORT"),
	}
	if tc.AuthorizerContainer != nil {
		env["AUTHZ_URL"] = fmt.Sprintf("http://authorizer:%s", os.Getenv("AUTHZ_PORT"))
		env["AUTHZ_CLIENT_ID"] = os.Getenv("AUTHZ_CLIENT_ID")
	}

	catalogContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        imageName,
			ExposedPorts: []string{string(tcpPort)},
			Env:          env,
			WaitingFor:   wait.ForHTTP("/health").WithPort(tcpPort).WithStartupTimeout(30 * time.Second),
			Networks:     []string{tc.Network.Name},
		},
		Started: true,
	})
	if err != nil {
		return err
	}
	tc.CatalogContainer = catalogContainer

	host, _ := catalogContainer.Host(ctx)
	port, _ := catalogContainer.MappedPort(ctx, tcpPort)
	logMessage(t, "BASE_URL=http://%s:%s", host, port.Port())
	return nil
}

func dbInitEnv(dbType string) map[string]string {
	switch dbType {
	case "postgres", "postgresql":
		return map[string]string{
			"POSTGRES_PASSWORD": os.Getenv("DB_PASSWORD"),
			"POSTGRES_USER":     os.Getenv("DB_USER"),
			"POSTGRES_DB":       os.Getenv("DB_DATABASE"),
		}
	}
	return map[string]string{
		"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
		"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
		"MYSQL_USER":          os.Getenv("DB_USER"),
		"MYSQL_PASSWORD":      os.Getenv("DB_PASSWORD"),
	}
}

// initMySQL creates the catalog tables and grants as root, with the raw mysql driver
func initMySQL(host string, port nat.Port) error {
	dbName := os.Getenv("DB_DATABASE")
	rootDSN := fmt.Sprintf("root:%s@tcp(%s:%s)/", os.Getenv("DB_ROOT_PASSWORD"), host, port.Port())

	root, err := sql.Open("mysql", rootDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to MariaDB for setup: %w", err)
	}
	defer root.Close()

	for i := 0; i < 30; i++ {
		if err = root.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	setup := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", dbName),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")),
	}
	if authzDB := os.Getenv("AUTHZ_DATABASE"); authzDB != "" {
		setup = append(setup, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", authzDB))
	}
	for _, stmt := range setup {
		if _, err := root.Exec(stmt); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, stmt)
		}
	}

	app, err := sql.Open("mysql", rootDSN+dbName)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := ExecuteScript(app, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("failed to execute tables init sql: %w", err)
	}
	if err := ExecuteScript(app, os.ExpandEnv(data.InitdbMariaDBPrivileges)); err != nil {
		return fmt.Errorf("failed to execute privileges init sql: %w", err)
	}
	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}
	return false, nil
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
