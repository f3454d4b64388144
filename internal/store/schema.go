// Package store implements the SQLite data layer for AgriPOS: schema
// materialization, the generic query gateway, and the typed entity
// repositories.
// Implements: prd002-sqlite-schema (R1 table DDL, R2 cascade rules);
//
//	docs/ARCHITECTURE § Schema Store.
package store

// Schema DDL for all tables (prd002-sqlite-schema R1). Creation is
// idempotent: every statement is IF NOT EXISTS so Open is safe to call on
// every startup. Cascade rules form a strict ownership tree rooted at
// farm_profiles; inventory_transactions and sale_items have two parents
// and go away when either one does.
const (
	createFarmProfiles = `CREATE TABLE IF NOT EXISTS farm_profiles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    address TEXT,
    owner TEXT,
    phone TEXT,
    email TEXT,
    tax_id TEXT,
    notes TEXT,
    modules TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    farm_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    type TEXT NOT NULL,
    description TEXT,
    sku TEXT,
    unit TEXT,
    price REAL DEFAULT 0,
    cost REAL DEFAULT 0,
    quantity REAL DEFAULT 0,
    min_quantity REAL DEFAULT 0,
    image TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (farm_id) REFERENCES farm_profiles(id) ON DELETE CASCADE
);`

	createLivestock = `CREATE TABLE IF NOT EXISTS livestock (
    id TEXT PRIMARY KEY,
    farm_id INTEGER NOT NULL,
    name TEXT,
    species TEXT NOT NULL,
    breed TEXT,
    tag_id TEXT,
    status TEXT NOT NULL,
    birth_date TEXT,
    acquisition_date TEXT,
    acquisition_cost REAL DEFAULT 0,
    group_id TEXT,
    parent_female TEXT,
    parent_male TEXT,
    notes TEXT,
    image TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (farm_id) REFERENCES farm_profiles(id) ON DELETE CASCADE
);`

	createLivestockEvents = `CREATE TABLE IF NOT EXISTS livestock_events (
    id TEXT PRIMARY KEY,
    livestock_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    event_date TEXT NOT NULL,
    description TEXT,
    value REAL DEFAULT 0,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (livestock_id) REFERENCES livestock(id) ON DELETE CASCADE
);`

	createCrops = `CREATE TABLE IF NOT EXISTS crops (
    id TEXT PRIMARY KEY,
    farm_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    crop_type TEXT NOT NULL,
    variety TEXT,
    plot_id TEXT,
    status TEXT NOT NULL,
    planting_date TEXT,
    expected_harvest_date TEXT,
    actual_harvest_date TEXT,
    seed_quantity REAL DEFAULT 0,
    seed_unit TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (farm_id) REFERENCES farm_profiles(id) ON DELETE CASCADE
);`

	createCropEvents = `CREATE TABLE IF NOT EXISTS crop_events (
    id TEXT PRIMARY KEY,
    crop_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    event_date TEXT NOT NULL,
    description TEXT,
    product_used TEXT,
    quantity REAL DEFAULT 0,
    unit TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (crop_id) REFERENCES crops(id) ON DELETE CASCADE
);`

	createPlots = `CREATE TABLE IF NOT EXISTS plots (
    id TEXT PRIMARY KEY,
    farm_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    size REAL DEFAULT 0,
    size_unit TEXT,
    location TEXT,
    soil_type TEXT,
    status TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (farm_id) REFERENCES farm_profiles(id) ON DELETE CASCADE
);`

	createInventoryTransactions = `CREATE TABLE IF NOT EXISTS inventory_transactions (
    id TEXT PRIMARY KEY,
    farm_id INTEGER NOT NULL,
    product_id TEXT NOT NULL,
    transaction_type TEXT NOT NULL,
    quantity REAL NOT NULL,
    unit_price REAL DEFAULT 0,
    total_price REAL DEFAULT 0,
    date TEXT NOT NULL,
    source TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (farm_id) REFERENCES farm_profiles(id) ON DELETE CASCADE,
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
);`

	createSales = `CREATE TABLE IF NOT EXISTS sales (
    id TEXT PRIMARY KEY,
    farm_id INTEGER NOT NULL,
    invoice_number TEXT,
    customer_name TEXT,
    customer_contact TEXT,
    sale_date TEXT NOT NULL,
    total_amount REAL DEFAULT 0,
    discount_amount REAL DEFAULT 0,
    tax_amount REAL DEFAULT 0,
    final_amount REAL DEFAULT 0,
    payment_method TEXT,
    payment_status TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (farm_id) REFERENCES farm_profiles(id) ON DELETE CASCADE
);`

	createSaleItems = `CREATE TABLE IF NOT EXISTS sale_items (
    id TEXT PRIMARY KEY,
    sale_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    quantity REAL NOT NULL,
    unit_price REAL NOT NULL,
    discount_percentage REAL DEFAULT 0,
    tax_percentage REAL DEFAULT 0,
    total_price REAL NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (sale_id) REFERENCES sales(id) ON DELETE CASCADE,
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
);`
)

// Index DDL for common list and filter paths (prd002-sqlite-schema R3).
const (
	idxProductsFarm       = `CREATE INDEX IF NOT EXISTS idx_products_farm ON products(farm_id);`
	idxLivestockFarm      = `CREATE INDEX IF NOT EXISTS idx_livestock_farm ON livestock(farm_id);`
	idxLivestockStatus    = `CREATE INDEX IF NOT EXISTS idx_livestock_status ON livestock(farm_id, status);`
	idxLivestockEventsOwn = `CREATE INDEX IF NOT EXISTS idx_livestock_events_owner ON livestock_events(livestock_id);`
	idxCropsFarm          = `CREATE INDEX IF NOT EXISTS idx_crops_farm ON crops(farm_id);`
	idxCropsStatus        = `CREATE INDEX IF NOT EXISTS idx_crops_status ON crops(farm_id, status);`
	idxCropEventsOwner    = `CREATE INDEX IF NOT EXISTS idx_crop_events_owner ON crop_events(crop_id);`
	idxPlotsFarm          = `CREATE INDEX IF NOT EXISTS idx_plots_farm ON plots(farm_id);`
	idxInventoryFarm      = `CREATE INDEX IF NOT EXISTS idx_inventory_farm ON inventory_transactions(farm_id);`
	idxInventoryProduct   = `CREATE INDEX IF NOT EXISTS idx_inventory_product ON inventory_transactions(product_id);`
	idxSalesFarm          = `CREATE INDEX IF NOT EXISTS idx_sales_farm ON sales(farm_id);`
	idxSalesDate          = `CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(farm_id, sale_date);`
	idxSaleItemsSale      = `CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items(sale_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFarmProfiles,
	createProducts,
	createLivestock,
	createLivestockEvents,
	createCrops,
	createCropEvents,
	createPlots,
	createInventoryTransactions,
	createSales,
	createSaleItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxProductsFarm,
	idxLivestockFarm,
	idxLivestockStatus,
	idxLivestockEventsOwn,
	idxCropsFarm,
	idxCropsStatus,
	idxCropEventsOwner,
	idxPlotsFarm,
	idxInventoryFarm,
	idxInventoryProduct,
	idxSalesFarm,
	idxSalesDate,
	idxSaleItemsSale,
}
