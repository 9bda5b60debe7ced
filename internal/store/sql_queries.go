package store

const (
	createVendor = `INSERT INTO vendors (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING vendor_id, username, email, password_hash, created_at;`

	findVendorByEmail = `SELECT vendor_id, username, email, password_hash, created_at
    FROM vendors
    WHERE email = $1;`

	getAllVendors = `SELECT vendor_id, username, email, password_hash, created_at
    FROM vendors
    ORDER BY vendor_id;`

	getVendorByID = `SELECT vendor_id, username, email, password_hash, created_at
    FROM vendors
    WHERE vendor_id = $1;`

	createFirm = `INSERT INTO firms (vendor_id, firm_name, area, category, region, offer, image)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING firm_id, vendor_id, firm_name, area, category, region, offer, image, created_at;`

	getFirmByID = `SELECT firm_id, vendor_id, firm_name, area, category, region, offer, image, created_at
    FROM firms
    WHERE firm_id = $1;`

	deleteFirm = `DELETE FROM firms
    WHERE firm_id = $1;`

	createProduct = `INSERT INTO products (firm_id, product_name, price, category, best_seller, description, image)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING product_id, firm_id, product_name, price, category, best_seller, description, image, created_at;`

	deleteProduct = `DELETE FROM products
    WHERE product_id = $1;`
)
