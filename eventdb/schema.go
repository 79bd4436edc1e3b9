package eventdb

// create a table for pox events
const eventTableSchema = `
create table if not exists event (
	burnHeight decimal(32,0),
	eventIndex integer,
	origin blob(21),
	name text,
	data blob
);

CREATE INDEX if not exists burnHeightIndex on event(burnHeight);
CREATE INDEX if not exists originIndex on event(origin);
CREATE INDEX if not exists nameIndex on event(name);
`
