package persistence

import "strings"

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id_user   $SERIAL,
		login     TEXT NOT NULL UNIQUE,
		password  TEXT NOT NULL,
		moderator BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS worlds (
		id_world      $SERIAL,
		name          TEXT NOT NULL UNIQUE,
		configuration TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS epochs (
		id_epoch $SERIAL,
		id_world BIGINT NOT NULL REFERENCES worlds(id_world),
		active   BOOLEAN NOT NULL DEFAULT FALSE,
		finished BOOLEAN NOT NULL DEFAULT FALSE,
		ticks    BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS lands (
		id_land  $SERIAL,
		id_user  BIGINT NOT NULL REFERENCES users(id_user),
		id_world BIGINT NOT NULL REFERENCES worlds(id_world),
		id_epoch BIGINT NOT NULL REFERENCES epochs(id_epoch),
		name     TEXT NOT NULL,
		granted  BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE (id_world, name)
	)`,
	`CREATE TABLE IF NOT EXISTS settlements (
		id_settlement $SERIAL,
		id_land       BIGINT NOT NULL REFERENCES lands(id_land),
		name          TEXT NOT NULL,
		UNIQUE (id_land, name)
	)`,
	`CREATE TABLE IF NOT EXISTS resources (
		holder_class SMALLINT NOT NULL,
		id_holder    BIGINT NOT NULL,
		id_resource  TEXT NOT NULL,
		volume       BIGINT NOT NULL CHECK (volume >= 0),
		PRIMARY KEY (holder_class, id_holder, id_resource)
	)`,
	`CREATE TABLE IF NOT EXISTS humans (
		holder_class SMALLINT NOT NULL,
		id_holder    BIGINT NOT NULL,
		human_class  TEXT NOT NULL,
		id_human     TEXT NOT NULL,
		experience   TEXT NOT NULL,
		volume       BIGINT NOT NULL CHECK (volume >= 0),
		PRIMARY KEY (holder_class, id_holder, human_class, id_human, experience)
	)`,
	`CREATE TABLE IF NOT EXISTS buildings (
		holder_class   SMALLINT NOT NULL,
		id_holder      BIGINT NOT NULL,
		building_class TEXT NOT NULL,
		id_building    TEXT NOT NULL,
		volume         BIGINT NOT NULL CHECK (volume >= 0),
		PRIMARY KEY (holder_class, id_holder, building_class, id_building)
	)`,
}

func schema(driver string) []string {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == DriverPostgres {
		serial = "BIGSERIAL PRIMARY KEY"
	}
	stmts := make([]string, len(tables))
	for i, t := range tables {
		stmts[i] = strings.Replace(t, "$SERIAL", serial, 1)
	}
	return stmts
}
