package fixtures

import (
	"net/http"

	"servicehub/middleware"
	"servicehub/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the marketplace API contract backed by d.
func RegisterRoutes(r gin.IRouter, d *Data) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Multi-Service Platform API"})
		})
		api.GET("/stores", d.listStores)
		api.GET("/products", d.listProducts)
		api.GET("/cab-services", d.listCabServices)
		api.GET("/handyman-services", d.listHandymanServices)
		api.GET("/analytics/dashboard", middleware.RequireBearer(), d.dashboard)
	}
}

func (d *Data) listStores(c *gin.Context) {
	category := c.Query("category")
	stores := make([]models.Store, 0, len(d.Stores))
	for _, s := range d.Stores {
		if !s.IsActive || (category != "" && s.Category != category) {
			continue
		}
		stores = append(stores, s)
	}
	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

func (d *Data) listProducts(c *gin.Context) {
	storeID, category := c.Query("store_id"), c.Query("category")
	products := make([]models.Product, 0, len(d.Products))
	for _, p := range d.Products {
		if !p.IsAvailable {
			continue
		}
		if storeID != "" && p.StoreID != storeID {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (d *Data) listCabServices(c *gin.Context) {
	services := make([]models.CabService, 0, len(d.CabServices))
	for _, s := range d.CabServices {
		if s.IsActive {
			services = append(services, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (d *Data) listHandymanServices(c *gin.Context) {
	category := c.Query("category")
	services := make([]models.HandymanService, 0, len(d.HandymanServices))
	for _, s := range d.HandymanServices {
		if !s.IsActive || (category != "" && s.Category != category) {
			continue
		}
		services = append(services, s)
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (d *Data) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, d.Dashboard())
}
