package database

var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS profile (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS developer (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	last_name TEXT NOT NULL,
	first_name TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	profile_id INTEGER NOT NULL,
	FOREIGN KEY (profile_id) REFERENCES profile(id)
);

CREATE INDEX IF NOT EXISTS idx_developer_name ON developer(last_name, first_name);
CREATE INDEX IF NOT EXISTS idx_developer_profile_id ON developer(profile_id);
`}

// MySQL refuses multi-statement Exec by default, so each statement stands alone.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS profile (
		id INTEGER NOT NULL PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(50) NOT NULL UNIQUE
	);`,
	`CREATE TABLE IF NOT EXISTS developer (
		id INTEGER NOT NULL PRIMARY KEY AUTO_INCREMENT,
		last_name VARCHAR(50) NOT NULL,
		first_name VARCHAR(50) NOT NULL,
		phone VARCHAR(15) NOT NULL DEFAULT '',
		email VARCHAR(100) NOT NULL,
		password_hash CHAR(64) NOT NULL,
		profile_id INTEGER NOT NULL,
		INDEX idx_developer_name (last_name, first_name),
		FOREIGN KEY (profile_id) REFERENCES profile (id)
	);`,
}

// PostgreSQL has no SHA2; the function below gives it the MySQL signature so
// every dialect shares the same statements.
var postgresSchema = []string{
	`CREATE OR REPLACE FUNCTION sha2(input text, bits integer) RETURNS text AS $$
		SELECT CASE bits
			WHEN 224 THEN encode(sha224(convert_to(input, 'UTF8')), 'hex')
			WHEN 384 THEN encode(sha384(convert_to(input, 'UTF8')), 'hex')
			WHEN 512 THEN encode(sha512(convert_to(input, 'UTF8')), 'hex')
			ELSE encode(sha256(convert_to(input, 'UTF8')), 'hex')
		END
	$$ LANGUAGE SQL IMMUTABLE`,
	`CREATE TABLE IF NOT EXISTS profile (
		id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS developer (
		id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		last_name VARCHAR(50) NOT NULL,
		first_name VARCHAR(50) NOT NULL,
		phone VARCHAR(15) NOT NULL DEFAULT '',
		email VARCHAR(100) NOT NULL,
		password_hash CHAR(64) NOT NULL,
		profile_id INTEGER NOT NULL REFERENCES profile (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_developer_name ON developer (last_name, first_name)`,
}
