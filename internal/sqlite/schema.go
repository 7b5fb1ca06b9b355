package sqlite

// Schema DDL for the three snapshot tables. A position column preserves
// the collection order across save/load. Orders denormalize the
// committed customer snapshot; tags and items are stored as JSON text.
const (
	createPersons = `CREATE TABLE IF NOT EXISTS persons (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT NOT NULL,
    address TEXT NOT NULL,
    tags TEXT NOT NULL
);`

	createPastries = `CREATE TABLE IF NOT EXISTS pastries (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    price TEXT NOT NULL
);`

	createOrders = `CREATE TABLE IF NOT EXISTS orders (
    position INTEGER PRIMARY KEY,
    order_id TEXT NOT NULL UNIQUE,
    customer TEXT NOT NULL,
    items TEXT NOT NULL,
    order_date TEXT NOT NULL,
    status TEXT NOT NULL
);`
)

// allTables lists the DDL statements run on open.
var allTables = []string{createPersons, createPastries, createOrders}
